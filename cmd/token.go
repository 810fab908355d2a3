// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

var (
	tokenUserID   string
	tokenRole     string
	tokenTenantID string
	tokenSecret   string
	tokenTTL      time.Duration
)

// tokenCmd mints a development token. Production tokens come from the
// provisioning flows.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed bearer token for development",
	Run: func(cmd *cobra.Command, args []string) {
		role, err := types.ParseRole(tokenRole)
		if err != nil {
			log.Fatalf("Invalid role: %v", err)
		}

		issuer := authentication.NewJWTIssuer(
			tokenSecret,
			tokenTTL,
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor(),
			logging.NewNoopLogger(),
		)

		token, err := issuer.IssueToken(context.Background(), tokenUserID, role, tokenTenantID)
		if err != nil {
			log.Fatalf("Failed to mint token: %v", err)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "Subject user id")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "user", "Role claim")
	tokenCmd.Flags().StringVar(&tokenTenantID, "tenant-id", "", "Tenant claim")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Signing secret")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("user-id")
	_ = tokenCmd.MarkFlagRequired("secret")
}
