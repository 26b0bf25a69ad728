package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CaptchaVerifier reports whether a reCAPTCHA token passes the trust
// threshold. Implemented by utils.RecaptchaVerifier; tests use a stub.
type CaptchaVerifier interface {
	Verify(token string) bool
}

// CaptchaGate returns a middleware that rejects the request when a
// recaptcha_token is present in the body but fails verification. Requests
// without a token pass through.
func CaptchaGate(verifier CaptchaVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RecaptchaToken string `json:"recaptcha_token"`
		})
		if err := c.BodyParser(reqData); err == nil && reqData.RecaptchaToken != "" {
			if !verifier.Verify(reqData.RecaptchaToken) {
				return JsonResponse(c, fiber.StatusBadRequest, false, "reCAPTCHA verification failed!", nil)
			}
		}
		return c.Next()
	}
}
