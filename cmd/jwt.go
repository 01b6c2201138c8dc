package main

import (
	"context"
	"fmt"
	"os"
	"stylist/internal/config"
	"stylist/pkg/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a given subject (user ID) and TTL. The token carries the configured
// issuer, so it verifies against a local JWKS endpoint serving the matching
// public key. Intended for development and testing.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetString("subject")
			keyPath, _ := cmd.Flags().GetString("key")
			kid, _ := cmd.Flags().GetString("kid")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			pem, err := os.ReadFile(keyPath)
			if err != nil {
				logger.Fatal(context.Background(), "could not read private key file", zap.Error(err))
			}
			key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
			if err != nil {
				logger.Fatal(context.Background(), "could not parse RSA private key", zap.Error(err))
			}

			claims := jwt.RegisteredClaims{
				Subject:   subject,
				Issuer:    cfg.Auth.IssuerURL,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				NotBefore: jwt.NewNumericDate(time.Now()),
			}
			token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
			token.Header["kid"] = kid
			signed, err := token.SignedString(key)
			if err != nil {
				logger.Fatal(context.Background(), "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (e.g., user ID)")
	cmd.Flags().String("key", "jwt.pem", "Path to the RSA private key PEM file")
	cmd.Flags().String("kid", "dev", "Key id to put in the token header")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
