package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/mko-api/infrastructure/repository"
	"github.com/vfg2006/mko-api/internal/domain"
	"github.com/vfg2006/mko-api/internal/usecases/authenticating"
	"github.com/vfg2006/mko-api/pkg/utils"
)

var (
	errUserExists  = errors.New("já existe um usuário com este e-mail")
	errInvalidRole = errors.New("role deve ser admin ou user")
)

func newUsersCmd(a *app) *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Gerencia usuários",
	}

	users.AddCommand(newUsersCreateCmd(a))
	return users
}

func newUsersCreateCmd(a *app) *cobra.Command {
	var email, password, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Cria um usuário com senha",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email = authenticating.NormalizeEmail(email)
			if !authenticating.IsValidEmail(email) {
				return authenticating.ErrEmailInvalid
			}
			if !authenticating.IsStrongPassword(password) {
				return authenticating.ErrWeakPassword
			}
			if role != domain.RoleAdmin && role != domain.RoleUser {
				return errInvalidRole
			}

			cfg, err := a.config()
			if err != nil {
				return err
			}

			repos, err := repository.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer repos.Close()

			existing, err := repos.Users.GetUserByEmail(cmd.Context(), email)
			if err != nil {
				return err
			}
			if existing != nil {
				return errUserExists
			}

			hash, err := authenticating.HashPassword(password)
			if err != nil {
				return fmt.Errorf("erro ao gerar hash da senha: %w", err)
			}

			user := &domain.User{
				ID:        utils.MakeID("user"),
				Email:     email,
				PassHash:  hash,
				Role:      role,
				CreatedAt: time.Now().UTC(),
			}
			if err := repos.Users.CreateUser(cmd.Context(), user); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Usuário %s criado (%s, %s).\n", user.Email, user.ID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "e-mail do usuário")
	cmd.Flags().StringVar(&password, "password", "", "senha (mín. 8 caracteres com letra e dígito)")
	cmd.Flags().StringVar(&role, "role", domain.RoleUser, "admin ou user")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
