package cli

import (
	"time"

	"skill-manager/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

type issuedToken struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newTokenCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint bearer tokens for the HTTP API",
	}

	var subject string
	var ttl time.Duration
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a write token signed with auth.token_secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := jwt.NewHMACService(s.cfg.Auth.TokenSecret, s.cfg.Auth.Issuer, s.cfg.Auth.TokenTTL)
			token, claims, err := svc.IssueToken(subject, ttl)
			if err != nil {
				return err
			}
			out := issuedToken{Token: token, Subject: claims.Subject}
			if claims.ExpiresAt != nil {
				out.ExpiresAt = claims.ExpiresAt.Time.UTC()
			}
			return s.print(out)
		},
	}
	issue.Flags().StringVar(&subject, "subject", "operator", "Token subject")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime, defaults to auth.token_ttl")

	cmd.AddCommand(issue)
	return cmd
}
