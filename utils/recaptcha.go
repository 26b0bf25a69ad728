package utils

import (
	"encoding/json"
	"log"

	"github.com/go-resty/resty/v2"
)

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// minimum trust score accepted from the siteverify response
const recaptchaMinScore = 0.5

// RecaptchaVerifier checks tokens against Google's siteverify endpoint.
type RecaptchaVerifier struct {
	client    *resty.Client
	secret    string
	verifyURL string
}

func NewRecaptchaVerifier(secret string) *RecaptchaVerifier {
	return &RecaptchaVerifier{
		client:    resty.New(),
		secret:    secret,
		verifyURL: recaptchaVerifyURL,
	}
}

// Verify returns true only when the provider confirms the token and its
// score clears the threshold. Any provider error counts as a failed check.
func (v *RecaptchaVerifier) Verify(token string) bool {
	resp, err := v.client.R().
		SetQueryParams(map[string]string{
			"secret":   v.secret,
			"response": token,
		}).
		Post(v.verifyURL)
	if err != nil || resp.StatusCode() != 200 {
		log.Printf("reCAPTCHA verification error: %v %s", err, resp.String())
		return false
	}

	var result struct {
		Success bool    `json:"success"`
		Score   float64 `json:"score"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		log.Printf("reCAPTCHA response parse error: %v", err)
		return false
	}

	return result.Success && result.Score > recaptchaMinScore
}
