// Package cli is the command line front end of the PhysioCare client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"physiocare-client/internal/app/viewstate/appointmentdetail"
	"physiocare-client/internal/app/viewstate/appointments"
	"physiocare-client/internal/app/viewstate/dashboard"
	"physiocare-client/internal/app/viewstate/login"
	"physiocare-client/internal/app/viewstate/records"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"
	"time"

	"github.com/spf13/cobra"
)

// AppFactory builds the App a command runs against.
type AppFactory func(ctx context.Context) (*App, error)

type commandContext struct {
	newApp AppFactory
	app    *App
}

// NewRootCommand assembles the physiocare command tree. The App is built once,
// before the subcommand runs.
func NewRootCommand(newApp AppFactory) *cobra.Command {
	rootCmd, _ := newRootCommand(newApp)
	return rootCmd
}

// Execute runs the command line and closes the App afterwards, even when the command failed.
func Execute(ctx context.Context, newApp AppFactory) error {
	rootCmd, cc := newRootCommand(newApp)
	err := rootCmd.ExecuteContext(ctx)
	if cc.app != nil {
		if closeErr := cc.app.Close(ctx); err == nil {
			err = closeErr
		}
	}
	return err
}

func newRootCommand(newApp AppFactory) (*cobra.Command, *commandContext) {
	cc := &commandContext{newApp: newApp}

	rootCmd := &cobra.Command{
		Use:          "physiocare",
		Short:        "PhysioCare clinic client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := cc.newApp(cmd.Context())
			if err != nil {
				return err
			}
			if app.Out == nil {
				app.Out = cmd.OutOrStdout()
			}
			cc.app = app
			return nil
		},
	}

	rootCmd.AddCommand(cc.loginCmd())
	rootCmd.AddCommand(cc.logoutCmd())
	rootCmd.AddCommand(cc.whoamiCmd())
	rootCmd.AddCommand(cc.appointmentsCmd())
	rootCmd.AddCommand(cc.appointmentCmd())
	rootCmd.AddCommand(cc.recordsCmd())
	rootCmd.AddCommand(cc.recordCmd())
	rootCmd.AddCommand(cc.physiosCmd())
	return rootCmd, cc
}

func (cc *commandContext) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Sign in and store the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := login.NewLoginViewState(cmd.Context(), cc.app.Repository, cc.app.Log)
			defer vs.Close()

			vs.Login(args[0], args[1])
			vs.Wait()

			state := vs.Consume()
			if state.Status != login.StatusSuccess {
				return errors.New(state.Message)
			}
			fmt.Fprintf(cc.app.Out, "%s as %s (%s)\n", constvars.LoginSuccessMessage, state.Response.Role, state.Response.UserID)
			return nil
		},
	}
}

func (cc *commandContext) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := login.NewLoginViewState(cmd.Context(), cc.app.Repository, cc.app.Log)
			defer vs.Close()

			vs.Logout()
			vs.Wait()

			if cc.app.Repository.Session().IsAuthenticated() {
				return errors.New(constvars.ErrClientSomethingWrongWithApplication)
			}
			fmt.Fprintln(cc.app.Out, constvars.LogoutSuccessMessage)
			return nil
		},
	}
}

func (cc *commandContext) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := cc.app.Repository.Session()
			if !session.IsAuthenticated() {
				fmt.Fprintln(cc.app.Out, constvars.ErrClientNotLoggedIn)
				return nil
			}
			fmt.Fprintf(cc.app.Out, "user: %s\nrole: %s\n", session.UserID, session.Role)
			if !session.ExpiresAt.IsZero() {
				fmt.Fprintf(cc.app.Out, "expires: %s\n", session.ExpiresAt.In(time.Local).Format(time.RFC3339))
			}
			return nil
		},
	}
}

func (cc *commandContext) appointmentsCmd() *cobra.Command {
	var (
		past bool
		view string
	)
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Show the main screen for the signed in role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dashboard.NewDashboard(cmd.Context(), cc.app.Repository, cc.app.Log)
			defer d.Close()

			d.Load(dashboard.View(view))
			d.Wait()

			if message := d.Message().Get(); message != "" {
				return errors.New(message)
			}

			switch d.Mode().Get() {
			case dashboard.ModePatientAppointments:
				list := d.Appointments.FutureAppointments().Get()
				if past {
					list = d.Appointments.PastAppointments().Get()
				}
				renderAppointments(cc.app.Out, list)
				if message := d.Appointments.Error().Get(); message != "" {
					fmt.Fprintln(cc.app.Out, message)
				}
			case dashboard.ModePhysioAppointments:
				if message := d.Appointments.Error().Get(); message != "" {
					return errors.New(message)
				}
				partition := d.Appointments.Partition()
				list := partition.Upcoming
				if past {
					list = partition.Past
				}
				renderAppointments(cc.app.Out, list)
			case dashboard.ModeRecords:
				if message := d.Records.Error().Get(); message != "" {
					return errors.New(message)
				}
				list := d.Records.Records().Get()
				if len(list) == 0 {
					fmt.Fprintln(cc.app.Out, constvars.MessageNoRecordsFound)
					return nil
				}
				renderRecords(cc.app.Out, list)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&past, "past", false, "show past appointments instead of upcoming ones")
	cmd.Flags().StringVar(&view, "view", string(dashboard.ViewAppointments), "physio view: appointments or records")
	return cmd
}

func (cc *commandContext) appointmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointment",
		Short: "Show, create or delete a single appointment",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <appointmentId>",
		Short: "Show an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := appointmentdetail.NewAppointmentDetailViewState(cmd.Context(), cc.app.Repository, cc.app.Log)
			defer vs.Close()

			vs.LoadAppointment(args[0])
			vs.Wait()

			appointment := vs.Appointment().Get()
			if appointment == nil {
				return errors.New(vs.Error().Get())
			}
			renderAppointment(cc.app.Out, appointment, vs.FormattedDate())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <appointmentId>",
		Short: "Delete an appointment and list the remaining ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := cc.app.Repository.Session()
			if !session.IsPhysio() {
				return errors.New(physioOnlyMessage(session.IsAuthenticated()))
			}

			vs := appointments.NewAppointmentViewState(cmd.Context(), cc.app.Repository, cc.app.Log)
			defer vs.Close()

			vs.DeleteAppointmentByID(args[0], session.UserID)
			vs.Wait()

			if message := vs.Error().Get(); message != "" {
				return errors.New(message)
			}
			fmt.Fprintln(cc.app.Out, constvars.DeleteAppointmentSuccessMessage)
			renderAppointments(cc.app.Out, vs.Partition().Upcoming)
			return nil
		},
	})

	var physioID, date, diagnosis, treatment, observations string
	createCmd := &cobra.Command{
		Use:   "create <recordId>",
		Short: "Create an appointment under a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := cc.app.Repository.Session()
			if !session.IsPhysio() {
				return errors.New(physioOnlyMessage(session.IsAuthenticated()))
			}
			if physioID == "" {
				physioID = session.UserID
			}

			vs := appointments.NewAppointmentViewState(cmd.Context(), cc.app.Repository, cc.app.Log)
			defer vs.Close()

			err := vs.CreateAppointment(cmd.Context(), args[0], physioID, diagnosis, treatment, observations, date)
			if err != nil {
				return errors.New(exceptions.ClientMessage(err))
			}
			fmt.Fprintln(cc.app.Out, constvars.CreateAppointmentSuccessMessage)
			return nil
		},
	}
	createCmd.Flags().StringVar(&physioID, "physio", "", "physio id, defaults to the signed in physio")
	createCmd.Flags().StringVar(&date, "date", "", "appointment date, YYYY-MM-DD or RFC 3339")
	createCmd.Flags().StringVar(&diagnosis, "diagnosis", "", "diagnosis")
	createCmd.Flags().StringVar(&treatment, "treatment", "", "treatment")
	createCmd.Flags().StringVar(&observations, "observations", "", "observations")
	createCmd.MarkFlagRequired("date")
	cmd.AddCommand(createCmd)

	return cmd
}

func (cc *commandContext) recordsCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List patient records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := records.NewRecordViewState(cmd.Context(), cc.app.Repository, cc.app.Log)
			defer vs.Close()

			vs.LoadAllRecords()
			vs.Wait()

			if message := vs.Error().Get(); message != "" {
				return errors.New(message)
			}
			list := vs.Filter(search)
			if len(list) == 0 {
				fmt.Fprintln(cc.app.Out, constvars.MessageNoRecordsFound)
				return nil
			}
			renderRecords(cc.app.Out, list)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by patient name or surname")
	return cmd
}

func (cc *commandContext) recordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <patientId>",
		Short: "Show a patient's record with its appointments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := records.NewRecordViewState(cmd.Context(), cc.app.Repository, cc.app.Log)
			defer vs.Close()

			vs.LoadRecordDetail(args[0])
			vs.Wait()

			detail := vs.Detail().Get()
			if detail == nil {
				return errors.New(vs.Error().Get())
			}
			renderRecordDetail(cc.app.Out, detail)
			if message := vs.Error().Get(); message != "" {
				fmt.Fprintln(cc.app.Out, message)
			}
			return nil
		},
	}
}

func (cc *commandContext) physiosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "physios",
		Short: "List physiotherapists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := appointments.NewAppointmentViewState(cmd.Context(), cc.app.Repository, cc.app.Log)
			defer vs.Close()

			list, err := vs.Physios(cmd.Context())
			if err != nil {
				return errors.New(exceptions.ClientMessage(err))
			}
			renderPhysios(cc.app.Out, list)
			return nil
		},
	}
}

func physioOnlyMessage(authenticated bool) string {
	if !authenticated {
		return constvars.ErrClientNotLoggedIn
	}
	return constvars.ErrClientNotAuthorized
}
