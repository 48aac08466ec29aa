package cmdutil

import (
	"time"

	"github.com/spf13/pflag"
)

// PersistentFlags defines the flags for the api client, every flag can also be set
// through the environment variable of the same name, e.g. GEMINI_API_KEY.
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("gemini-api-key", "", "gemini api key")
	flags.String("gemini-api-secret", "", "gemini api secret")
	flags.String("gemini-base-url", "", "override the gemini api base url")
	flags.Bool("sandbox", false, "use the gemini sandbox environment")
	flags.Duration("timeout", 15*time.Second, "http request timeout, 0 disables the timeout")
}
