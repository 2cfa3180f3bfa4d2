package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
	"rentwheels-backend/internal/security"
	"rentwheels-backend/internal/service"
)

// Shell drives the interactive console. It owns stdout; all logging goes to
// stderr so tables and prompts stay readable.
type Shell struct {
	auth     service.AuthService
	vehicles service.VehicleService
	rentals  service.RentalService
	payments service.PaymentService
	admin    service.AdminService
	ping     func(ctx context.Context) error

	prompt *prompter
	out    io.Writer
}

func New(
	auth service.AuthService,
	vehicles service.VehicleService,
	rentals service.RentalService,
	payments service.PaymentService,
	admin service.AdminService,
	ping func(ctx context.Context) error,
	in io.Reader,
	out io.Writer,
) *Shell {
	return &Shell{
		auth:     auth,
		vehicles: vehicles,
		rentals:  rentals,
		payments: payments,
		admin:    admin,
		ping:     ping,
		prompt:   newPrompter(in, out),
		out:      out,
	}
}

// Run loops on the login menu until the user exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== RentWheels Vehicle Rentals ===")
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "1. Login")
		fmt.Fprintln(s.out, "2. Register")
		fmt.Fprintln(s.out, "3. Database status")
		fmt.Fprintln(s.out, "4. Exit")
		choice, err := s.prompt.line("Choose an option")
		if err != nil {
			return s.finish(err)
		}
		switch choice {
		case "1":
			if err := s.login(ctx); err != nil {
				return s.finish(err)
			}
		case "2":
			if err := s.register(ctx); err != nil {
				return s.finish(err)
			}
		case "3":
			s.databaseStatus(ctx)
		case "4":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
	}
}

// finish turns EOF on stdin into a clean exit.
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out, "\nGoodbye.")
		return nil
	}
	return err
}

func (s *Shell) login(ctx context.Context) error {
	username, err := s.prompt.nonEmpty("Username")
	if err != nil {
		return err
	}
	password, err := s.prompt.password("Password")
	if err != nil {
		return err
	}
	user, token, err := s.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fmt.Fprintln(s.out, "Invalid username or password.")
			return nil
		}
		return err
	}
	fmt.Fprintf(s.out, "Welcome, %s!\n", user.FullName)
	if user.Role == domain.RoleAdmin {
		return s.adminMenu(ctx, user, token)
	}
	return s.customerMenu(ctx, user, token)
}

// sessionValid re-checks the login token. A false return forces the caller
// back to the login menu.
func (s *Shell) sessionValid(token string) bool {
	if _, err := s.auth.ValidateSession(token); err != nil {
		if errors.Is(err, security.ErrExpiredToken) {
			fmt.Fprintln(s.out, "Session expired. Please log in again.")
		} else {
			fmt.Fprintln(s.out, "Session is no longer valid. Please log in again.")
		}
		return false
	}
	return true
}

func (s *Shell) register(ctx context.Context) error {
	username, err := s.prompt.nonEmpty("Username")
	if err != nil {
		return err
	}
	password, err := s.prompt.password("Password")
	if err != nil {
		return err
	}
	fullName, err := s.prompt.nonEmpty("Full name")
	if err != nil {
		return err
	}
	email, err := s.prompt.nonEmpty("Email")
	if err != nil {
		return err
	}
	phone, err := s.prompt.line("Phone")
	if err != nil {
		return err
	}
	user, err := s.auth.Register(ctx, username, password, fullName, email, phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			fmt.Fprintln(s.out, "That username is already taken.")
		case errors.Is(err, service.ErrMissingFields):
			fmt.Fprintln(s.out, "All fields except phone are required.")
		default:
			return err
		}
		return nil
	}
	fmt.Fprintf(s.out, "Registered %s. You can now log in.\n", user.Username)
	return nil
}

func (s *Shell) databaseStatus(ctx context.Context) {
	if err := s.ping(ctx); err != nil {
		fmt.Fprintf(s.out, "Database connection FAILED: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Database connection OK.")
}

func (s *Shell) customerMenu(ctx context.Context, user *domain.User, token string) error {
	for {
		if !s.sessionValid(token) {
			return nil
		}
		fmt.Fprintln(s.out)
		fmt.Fprintf(s.out, "--- Customer Menu (%s) ---\n", user.Username)
		fmt.Fprintln(s.out, "1. View available vehicles")
		fmt.Fprintln(s.out, "2. Rent a vehicle")
		fmt.Fprintln(s.out, "3. My rentals")
		fmt.Fprintln(s.out, "4. List my vehicle for rent")
		fmt.Fprintln(s.out, "5. My listed vehicles")
		fmt.Fprintln(s.out, "6. Update my vehicle rate")
		fmt.Fprintln(s.out, "7. Add money to wallet")
		fmt.Fprintln(s.out, "8. Wallet balance and transactions")
		fmt.Fprintln(s.out, "9. Logout")
		choice, err := s.prompt.line("Choose an option")
		if err != nil {
			return err
		}
		var actionErr error
		switch choice {
		case "1":
			actionErr = s.showAvailableVehicles(ctx)
		case "2":
			actionErr = s.rentVehicle(ctx, user)
		case "3":
			actionErr = s.showMyRentals(ctx, user)
		case "4":
			actionErr = s.listMyVehicle(ctx, user)
		case "5":
			actionErr = s.showMyVehicles(ctx, user)
		case "6":
			actionErr = s.updateRate(ctx, user.ID)
		case "7":
			actionErr = s.addToWallet(ctx, user)
		case "8":
			actionErr = s.showWallet(ctx, user)
		case "9":
			s.auth.Logout(ctx, user)
			fmt.Fprintln(s.out, "Logged out.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
		if actionErr != nil {
			return actionErr
		}
	}
}

func (s *Shell) adminMenu(ctx context.Context, admin *domain.User, token string) error {
	for {
		if !s.sessionValid(token) {
			return nil
		}
		fmt.Fprintln(s.out)
		fmt.Fprintf(s.out, "--- Admin Menu (%s) ---\n", admin.Username)
		fmt.Fprintln(s.out, "1. Review pending rentals")
		fmt.Fprintln(s.out, "2. View available vehicles")
		fmt.Fprintln(s.out, "3. Add company vehicle")
		fmt.Fprintln(s.out, "4. Update vehicle rate")
		fmt.Fprintln(s.out, "5. Set vehicle status")
		fmt.Fprintln(s.out, "6. View users")
		fmt.Fprintln(s.out, "7. Audit log")
		fmt.Fprintln(s.out, "8. Database statistics")
		fmt.Fprintln(s.out, "9. Logout")
		choice, err := s.prompt.line("Choose an option")
		if err != nil {
			return err
		}
		var actionErr error
		switch choice {
		case "1":
			actionErr = s.reviewPending(ctx, admin)
		case "2":
			actionErr = s.showAvailableVehicles(ctx)
		case "3":
			actionErr = s.addCompanyVehicle(ctx)
		case "4":
			actionErr = s.updateRate(ctx, domain.CompanyOwnerID)
		case "5":
			actionErr = s.setVehicleStatus(ctx)
		case "6":
			actionErr = s.showUsers(ctx)
		case "7":
			actionErr = s.showAuditLog(ctx)
		case "8":
			actionErr = s.showStats(ctx)
		case "9":
			s.auth.Logout(ctx, admin)
			fmt.Fprintln(s.out, "Logged out.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
		if actionErr != nil {
			return actionErr
		}
	}
}

func (s *Shell) showAvailableVehicles(ctx context.Context) error {
	vehicles, err := s.vehicles.ListAvailable(ctx)
	if err != nil {
		return s.report("list vehicles", err)
	}
	renderVehicles(s.out, vehicles)
	return nil
}

func (s *Shell) rentVehicle(ctx context.Context, user *domain.User) error {
	if err := s.showAvailableVehicles(ctx); err != nil {
		return err
	}
	vehicleID, err := s.prompt.int32Value("Vehicle ID")
	if err != nil {
		return err
	}
	rentalDate, err := s.prompt.date("Rental date")
	if err != nil {
		return err
	}
	returnDate, err := s.prompt.date("Return date")
	if err != nil {
		return err
	}
	quote, err := s.rentals.QuoteCost(ctx, vehicleID, rentalDate, returnDate)
	if err != nil {
		return s.report("quote rental", err)
	}
	if quote > 0 {
		fmt.Fprintf(s.out, "Total cost: %s\n", formatMoney(quote))
	}
	confirm, err := s.prompt.line("Confirm and pay from wallet? (y/n)")
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Fprintln(s.out, "Cancelled.")
		return nil
	}
	rental, err := s.rentals.Create(ctx, user.ID, vehicleID, rentalDate, returnDate)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidPeriod):
			fmt.Fprintln(s.out, "Return date must be after the rental date.")
		case errors.Is(err, repository.ErrVehicleNotAvailable):
			fmt.Fprintln(s.out, "That vehicle is not available.")
		case errors.Is(err, repository.ErrInsufficientFunds):
			fmt.Fprintln(s.out, "Insufficient wallet balance. Add money and try again.")
		default:
			return s.report("create rental", err)
		}
		return nil
	}
	fmt.Fprintf(s.out, "Rental #%d created and paid (%s). Awaiting admin approval.\n",
		rental.ID, formatMoney(rental.TotalCents))
	return nil
}

func (s *Shell) showMyRentals(ctx context.Context, user *domain.User) error {
	rentals, err := s.rentals.ListForUser(ctx, user.ID)
	if err != nil {
		return s.report("list rentals", err)
	}
	renderRentals(s.out, rentals)
	if len(rentals) == 0 {
		return nil
	}
	rentalID, err := s.prompt.optionalID("Rental ID for details (blank to go back)")
	if err != nil {
		return err
	}
	if rentalID == 0 {
		return nil
	}
	rt, err := s.rentals.Get(ctx, rentalID)
	if err != nil {
		if errors.Is(err, service.ErrRentalNotFound) {
			fmt.Fprintln(s.out, "No such rental.")
			return nil
		}
		return s.report("rental details", err)
	}
	if rt.UserID != user.ID {
		fmt.Fprintln(s.out, "No such rental.")
		return nil
	}
	renderRentalDetail(s.out, rt)
	return nil
}

func (s *Shell) listMyVehicle(ctx context.Context, user *domain.User) error {
	v, err := s.promptVehicleDetails()
	if err != nil {
		return err
	}
	if err := s.vehicles.AddUserVehicle(ctx, user.ID, v); err != nil {
		return s.report("list vehicle", err)
	}
	fmt.Fprintf(s.out, "Vehicle %s listed for rent as #%d.\n", v.RegistrationNo, v.ID)
	return nil
}

func (s *Shell) showMyVehicles(ctx context.Context, user *domain.User) error {
	vehicles, err := s.vehicles.ListOwned(ctx, user.ID)
	if err != nil {
		return s.report("list owned vehicles", err)
	}
	renderVehicles(s.out, vehicles)
	return nil
}

func (s *Shell) addCompanyVehicle(ctx context.Context) error {
	v, err := s.promptVehicleDetails()
	if err != nil {
		return err
	}
	if err := s.vehicles.AddCompanyVehicle(ctx, v); err != nil {
		return s.report("add vehicle", err)
	}
	fmt.Fprintf(s.out, "Vehicle %s added as #%d.\n", v.RegistrationNo, v.ID)
	return nil
}

func (s *Shell) promptVehicleDetails() (*domain.Vehicle, error) {
	regNo, err := s.prompt.nonEmpty("Registration number")
	if err != nil {
		return nil, err
	}
	makeName, err := s.prompt.nonEmpty("Make")
	if err != nil {
		return nil, err
	}
	model, err := s.prompt.nonEmpty("Model")
	if err != nil {
		return nil, err
	}
	year, err := s.prompt.int32Value("Year")
	if err != nil {
		return nil, err
	}
	color, err := s.prompt.nonEmpty("Color")
	if err != nil {
		return nil, err
	}
	rate, err := s.prompt.money("Daily rate")
	if err != nil {
		return nil, err
	}
	location, err := s.prompt.line("Location")
	if err != nil {
		return nil, err
	}
	return &domain.Vehicle{
		RegistrationNo: regNo,
		Make:           makeName,
		Model:          model,
		Year:           year,
		Color:          color,
		DailyRateCents: rate,
		Location:       location,
	}, nil
}

func (s *Shell) updateRate(ctx context.Context, ownerID int32) error {
	vehicleID, err := s.prompt.int32Value("Vehicle ID")
	if err != nil {
		return err
	}
	rate, err := s.prompt.money("New daily rate")
	if err != nil {
		return err
	}
	if err := s.vehicles.UpdateDailyRate(ctx, ownerID, vehicleID, rate); err != nil {
		if errors.Is(err, service.ErrNotVehicleOwner) {
			fmt.Fprintln(s.out, "You can only update vehicles you own.")
			return nil
		}
		return s.report("update rate", err)
	}
	fmt.Fprintln(s.out, "Daily rate updated.")
	return nil
}

func (s *Shell) setVehicleStatus(ctx context.Context) error {
	vehicleID, err := s.prompt.int32Value("Vehicle ID")
	if err != nil {
		return err
	}
	raw, err := s.prompt.nonEmpty("New status (AVAILABLE/RENTED/MAINTENANCE)")
	if err != nil {
		return err
	}
	status := domain.VehicleStatus(strings.ToUpper(raw))
	if err := s.vehicles.UpdateStatus(ctx, vehicleID, status); err != nil {
		if errors.Is(err, service.ErrUnknownVehicleStatus) {
			fmt.Fprintln(s.out, "Status must be AVAILABLE, RENTED or MAINTENANCE.")
			return nil
		}
		return s.report("update vehicle status", err)
	}
	fmt.Fprintln(s.out, "Vehicle status updated.")
	return nil
}

func (s *Shell) addToWallet(ctx context.Context, user *domain.User) error {
	amount, err := s.prompt.money("Amount to add")
	if err != nil {
		return err
	}
	balance, err := s.payments.AddToWallet(ctx, user.ID, amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			fmt.Fprintln(s.out, "Amount must be greater than zero.")
			return nil
		}
		return s.report("add to wallet", err)
	}
	user.WalletBalanceCents = balance
	fmt.Fprintf(s.out, "New balance: %s\n", formatMoney(balance))
	return nil
}

func (s *Shell) showWallet(ctx context.Context, user *domain.User) error {
	balance, err := s.payments.Balance(ctx, user.ID)
	if err != nil {
		return s.report("wallet balance", err)
	}
	user.WalletBalanceCents = balance
	fmt.Fprintf(s.out, "Wallet balance: %s\n", formatMoney(balance))
	txs, err := s.payments.ListTransactions(ctx, user.ID)
	if err != nil {
		return s.report("list transactions", err)
	}
	renderTransactions(s.out, txs)
	return nil
}

// reviewPending walks the pending queue one rental at a time. Skipped
// rentals stay pending for the next review.
func (s *Shell) reviewPending(ctx context.Context, admin *domain.User) error {
	pending, err := s.rentals.ListPending(ctx)
	if err != nil {
		return s.report("list pending rentals", err)
	}
	if len(pending) == 0 {
		fmt.Fprintln(s.out, "No pending rentals.")
		return nil
	}
	for _, rt := range pending {
		renderRentals(s.out, []domain.Rental{rt})
		if v, err := s.vehicles.Get(ctx, rt.VehicleID); err == nil {
			fmt.Fprintf(s.out, "Vehicle: %s %s (%s), %s/day\n",
				v.Make, v.Model, v.RegistrationNo, formatMoney(v.DailyRateCents))
		}
		choice, err := s.prompt.line("Approve this rental? (y/n/q)")
		if err != nil {
			return err
		}
		switch choice {
		case "y", "Y":
			approved, err := s.rentals.Approve(ctx, rt.ID, admin.ID)
			if err != nil {
				if errors.Is(err, repository.ErrRentalNotPending) {
					fmt.Fprintln(s.out, "That rental is no longer pending.")
					continue
				}
				return s.report("approve rental", err)
			}
			fmt.Fprintf(s.out, "Rental #%d approved.\n", approved.ID)
		case "q", "Q":
			return nil
		}
	}
	return nil
}

func (s *Shell) showUsers(ctx context.Context) error {
	users, err := s.admin.ListUsers(ctx)
	if err != nil {
		return s.report("list users", err)
	}
	renderUsers(s.out, users)
	return nil
}

func (s *Shell) showAuditLog(ctx context.Context) error {
	events, err := s.admin.RecentAuditEvents(ctx, 20)
	if err != nil {
		return s.report("list audit events", err)
	}
	renderAuditEvents(s.out, events)
	return nil
}

func (s *Shell) showStats(ctx context.Context) error {
	stats, err := s.admin.Stats(ctx)
	if err != nil {
		return s.report("collect stats", err)
	}
	renderStats(s.out, stats)
	return nil
}

// report logs an unexpected failure and keeps the menu alive.
func (s *Shell) report(action string, err error) error {
	logger.Error("shell action failed", "action", action, "error", err)
	fmt.Fprintf(s.out, "Something went wrong (%s). See the log for details.\n", action)
	return nil
}
