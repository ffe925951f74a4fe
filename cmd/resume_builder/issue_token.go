package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/spf13/cobra"
)

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Issue a bearer token for document writes",
	Long:  "Sign a JWT with JWT_SECRET for the given user. The server accepts it on PUT and DELETE /documents/{id}.",
	RunE:  runIssueToken,
}

var issueTokenUser string

func init() {
	issueTokenCmd.Flags().StringVar(&issueTokenUser, "user", "", "User ID (UUID); a new one is generated when empty")
	rootCmd.AddCommand(issueTokenCmd)
}

func runIssueToken(cmd *cobra.Command, _ []string) error {
	userID := uuid.New()
	if issueTokenUser != "" {
		parsed, err := uuid.Parse(issueTokenUser)
		if err != nil {
			return fmt.Errorf("invalid user ID: %w", err)
		}
		userID = parsed
	}

	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(userID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
