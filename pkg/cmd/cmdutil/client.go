package cmdutil

import (
	"net/url"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/c9s/gemini/pkg/exchange/gemini/geminiapi"
)

// NewRestClient creates the api client from the viper settings (flags, env vars and config file).
// Credentials are optional here, private requests fail with geminiapi.ErrEmptyAPIKey without them.
func NewRestClient() (*geminiapi.RestClient, error) {
	return NewRestClientFromViper(viper.GetViper())
}

func NewRestClientFromViper(v *viper.Viper) (*geminiapi.RestClient, error) {
	baseURL := geminiapi.ProductionAPIURL
	if v.GetBool("sandbox") {
		baseURL = geminiapi.SandboxAPIURL
	}

	if u := v.GetString("gemini-base-url"); len(u) > 0 {
		baseURL = u
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", baseURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" || len(u.Host) == 0 {
		return nil, errors.Errorf("invalid base url %q, expecting http(s)://host", baseURL)
	}

	client := geminiapi.NewClient(
		geminiapi.WithBaseURL(baseURL),
		geminiapi.WithTimeout(v.GetDuration("timeout")),
	)

	client.Auth(v.GetString("gemini-api-key"), v.GetString("gemini-api-secret"))
	return client, nil
}
