package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"skm_backend/internals/configs"
	"skm_backend/internals/log"
)

const recaptchaEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// CaptchaVerifier meneruskan token reCAPTCHA dari frontend ke Google.
type CaptchaVerifier struct {
	Secret   string
	Endpoint string
	Client   *http.Client
}

func NewCaptchaVerifier() *CaptchaVerifier {
	return &CaptchaVerifier{
		Secret:   configs.CaptchaSecret,
		Endpoint: recaptchaEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *CaptchaVerifier) Verify(ctx context.Context, token string) (map[string]any, error) {
	if strings.TrimSpace(v.Secret) == "" {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "captcha is not configured")
	}

	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		log.Printf("[CAPTCHA] request gagal: %v", err)
		return nil, fiber.NewError(fiber.StatusBadGateway, "captcha verification failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("captcha verification failed (%d)", resp.StatusCode))
	}

	var out map[string]any
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "captcha verification failed")
	}
	return out, nil
}
