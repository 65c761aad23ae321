package media

import (
	"time"

	"github.com/google/uuid"
	"github.com/imagekit-developer/imagekit-go"
)

const authTokenTTL = 30 * time.Minute

// AuthParams : le triplet que le client front transmet à ImageKit pour un
// upload direct. Le backend ne fait que signer, il ne proxy aucun média.
type AuthParams struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

type ImageKit struct {
	ik *imagekit.ImageKit
}

func New(privateKey, publicKey, urlEndpoint string) *ImageKit {
	return &ImageKit{
		ik: imagekit.NewFromParams(imagekit.NewParams{
			PrivateKey:  privateKey,
			PublicKey:   publicKey,
			UrlEndpoint: urlEndpoint,
		}),
	}
}

// AuthParams génère des paramètres d'upload à usage unique, valables 30 min.
func (m *ImageKit) AuthParams() AuthParams {
	signed := m.ik.SignToken(imagekit.SignTokenParam{
		Token:   uuid.NewString(),
		Expires: time.Now().Add(authTokenTTL).Unix(),
	})

	return AuthParams{
		Token:     signed.Token,
		Expire:    signed.Expires,
		Signature: signed.Signature,
	}
}
