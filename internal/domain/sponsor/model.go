package sponsor

import (
	"fmt"
	"net/url"
)

// Sponsor is a partner shown on the league's public pages.
type Sponsor struct {
	ID      string
	Name    string
	Type    string
	LogoURL string
	LinkURL string
}

func (s Sponsor) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("sponsor id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("sponsor name is required")
	}
	if err := validateURL("logo url", s.LogoURL); err != nil {
		return err
	}
	if err := validateURL("link url", s.LinkURL); err != nil {
		return err
	}

	return nil
}

// validateURL accepts an empty value or an absolute http(s) URL.
func validateURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid sponsor %s: %s", field, raw)
	}
	return nil
}
