package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"textgate/pkg/client"
)

var (
	profileHFKey     string
	profileGoogleKey string
	profileOpenAIKey string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the account profile, or store provider API keys",
	Long: `Without flags, prints the account profile with a presence flag per
provider key. With key flags, stores the given keys; keys not passed
are left unchanged, and stored keys are never printed back.`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileHFKey, "hf-key", "", "huggingface API key to store")
	profileCmd.Flags().StringVar(&profileGoogleKey, "google-key", "", "google_nlp API key to store")
	profileCmd.Flags().StringVar(&profileOpenAIKey, "openai-key", "", "openai API key to store")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	if profileHFKey != "" || profileGoogleKey != "" || profileOpenAIKey != "" {
		err := c.UpdateKeys(cmd.Context(), client.Keys{
			HuggingFaceAPIKey: profileHFKey,
			GoogleNLPAPIKey:   profileGoogleKey,
			OpenAIAPIKey:      profileOpenAIKey,
		})
		if err != nil {
			return err
		}
		fmt.Println("Profile updated")
		return nil
	}

	profile, err := c.Profile(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Username:  %s\n", profile.Username)
	fmt.Printf("Email:     %s\n", profile.Email)
	fmt.Printf("API calls: %d\n", profile.APICalls)
	fmt.Printf("Keys:      huggingface=%s google_nlp=%s openai=%s\n",
		keyState(profile.HasHuggingFaceAPIKey),
		keyState(profile.HasGoogleNLPAPIKey),
		keyState(profile.HasOpenAIAPIKey))
	return nil
}

func keyState(present bool) string {
	if present {
		return "set"
	}
	return "unset"
}
