package main

import (
	"context"
	"os"

	"sapphire/config"
	"sapphire/internal/usecase"
	"sapphire/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// superUserPasswordEnv keeps the password out of shell history when set.
const superUserPasswordEnv = "SAPPHIRE_SUPERUSER_PASSWORD"

func newSuperUserCmd() *cobra.Command {
	input := &usecase.SuperUserInput{}

	cmd := &cobra.Command{
		Use:   "superuser",
		Short: "Create the first SuperAdmin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input.Password == "" {
				input.Password = os.Getenv(superUserPasswordEnv)
			}
			if input.Password == "" {
				return errors.Errorf("a password is required: pass --password or set %s", superUserPasswordEnv)
			}

			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "load config")
			}

			app := fx.New(
				injectInfra(cfg),
				injectStorage(cfg),
				injectService(),
				fx.Provide(impl.NewUserService),
				fx.Invoke(func(lc fx.Lifecycle, users usecase.UserUsecase) {
					lc.Append(fx.Hook{
						OnStart: func(ctx context.Context) error {
							user, err := users.CreateSuperUser(ctx, input)
							if err != nil {
								return err
							}
							cmd.Printf("Created SuperAdmin %s (%s)\n", user.Username, user.ID)

							return nil
						},
					})
				}),
			)

			return runOnce(cmd.Context(), app)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Username, "username", "", "login name")
	flags.StringVar(&input.Email, "email", "", "email address")
	flags.StringVar(&input.FirstName, "first-name", "", "first name")
	flags.StringVar(&input.LastName, "last-name", "", "last name")
	flags.StringVar(&input.Password, "password", "", "password (or "+superUserPasswordEnv+")")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
