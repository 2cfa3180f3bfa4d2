package shell

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"rentwheels-backend/internal/domain"
)

func renderVehicles(out io.Writer, vehicles []domain.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Fprintln(out, "No vehicles found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREG NO\tMAKE\tMODEL\tYEAR\tCOLOR\tDAILY RATE\tSTATUS\tLOCATION")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			v.ID, v.RegistrationNo, v.Make, v.Model, v.Year, v.Color,
			formatMoney(v.DailyRateCents), v.Status, v.Location)
	}
	w.Flush()
}

func renderRentals(out io.Writer, rentals []domain.Rental) {
	if len(rentals) == 0 {
		fmt.Fprintln(out, "No rentals found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tFROM\tTO\tTOTAL\tSTATUS\tPAYMENT")
	for _, r := range rentals {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.VehicleID, r.RentalDate.Format(dateLayout), r.ReturnDate.Format(dateLayout),
			formatMoney(r.TotalCents), r.Status, r.PaymentStatus)
	}
	w.Flush()
}

func renderRentalDetail(out io.Writer, r *domain.Rental) {
	fmt.Fprintf(out, "Rental #%d: vehicle %d, %s to %s (%d days)\n",
		r.ID, r.VehicleID, r.RentalDate.Format(dateLayout), r.ReturnDate.Format(dateLayout), r.Days())
	fmt.Fprintf(out, "Total %s, status %s, payment %s (ref %s)\n",
		formatMoney(r.TotalCents), r.Status, r.PaymentStatus, r.PaymentRef)
}

func renderUsers(out io.Writer, users []domain.User) {
	if len(users) == 0 {
		fmt.Fprintln(out, "No users found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tEMAIL\tROLE\tWALLET")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.FullName, u.Email, u.Role, formatMoney(u.WalletBalanceCents))
	}
	w.Flush()
}

func renderTransactions(out io.Writer, txs []domain.WalletTransaction) {
	if len(txs) == 0 {
		fmt.Fprintln(out, "No transactions found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tAMOUNT\tDESCRIPTION\tWHEN")
	for _, tx := range txs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.Type, formatMoney(tx.AmountCents), tx.Description,
			tx.CreatedOn.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func renderAuditEvents(out io.Writer, events []domain.AuditEvent) {
	if len(events) == 0 {
		fmt.Fprintln(out, "No audit events found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEVENT\tMESSAGE\tWHEN")
	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			e.ID, e.EventType, e.Message, e.CreatedOn.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func renderStats(out io.Writer, stats *domain.Stats) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS")
	names := make([]string, 0, len(stats.TableCounts))
	for name := range stats.TableCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%d\n", name, stats.TableCounts[name])
	}
	w.Flush()
	fmt.Fprintf(out, "Total commission earned: %s\n", formatMoney(stats.TotalCommissionCents))
}
