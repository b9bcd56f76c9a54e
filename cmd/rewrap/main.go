// rewrap moves an envelope between protection modes: system key to password,
// password to system key, or one password to another.
// Usage: go run ./cmd/rewrap --from system --to password < envelope.txt
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	fromMode string
	toMode   string
	envelope string
)

var rootCmd = &cobra.Command{
	Use:   "rewrap",
	Short: "Re-seal an envelope under a different key",
	Long: `Decrypts an envelope with the system key (ENCRYPTION_KEY) or a prompted
password and seals the same plaintext again under a new prompted password or the
system key. The envelope is read from --envelope or stdin. Only the new envelope
is printed.`,
	SilenceUsage: true,
	RunE:         runRewrap,
}

func init() {
	rootCmd.Flags().StringVar(&fromMode, "from", modePassword, "mode of the input envelope: system or password")
	rootCmd.Flags().StringVar(&toMode, "to", modePassword, "mode of the output envelope: system or password")
	rootCmd.Flags().StringVar(&envelope, "envelope", "", "envelope to rewrap (default: read stdin)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
