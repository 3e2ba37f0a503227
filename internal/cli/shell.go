package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"tripline/internal/models"
	"tripline/internal/providers"
	"tripline/internal/services"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

// Shell is the interactive terminal menu. It is pure glue: it collects
// input, calls the services and prints results. The only state it holds is
// the currently selected trip id, cleared when that trip is deleted.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	trips  services.TripServiceInterface
	acts   services.ActivityServiceInterface
	budget services.BudgetServiceInterface
	dest   services.DestinationServiceInterface
	logger providers.Logger

	selected string
}

func NewShell(trips services.TripServiceInterface, acts services.ActivityServiceInterface, budget services.BudgetServiceInterface, dest services.DestinationServiceInterface, logger providers.Logger) *Shell {
	return &Shell{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		trips:  trips,
		acts:   acts,
		budget: budget,
		dest:   dest,
		logger: logger,
	}
}

// Run loops the main menu until the user exits or input ends. Core errors
// are printed and the menu comes back; they never crash the process.
func (s *Shell) Run() error {
	for {
		s.printMenu()
		choice, err := s.readLine("Choose an option: ")
		if err != nil {
			return s.finish(err)
		}

		var handlerErr error
		switch choice {
		case "1":
			handlerErr = s.handleCreateTrip()
		case "2":
			handlerErr = s.handleViewTrips()
		case "3":
			handlerErr = s.handleSelectTrip()
		case "4":
			handlerErr = s.handleDeleteTrip()
		case "5":
			handlerErr = s.handleViewActivities()
		case "6":
			handlerErr = s.handleFilterActivities()
		case "7":
			handlerErr = s.handleAddActivity()
		case "8":
			handlerErr = s.handleDeleteActivity()
		case "9":
			handlerErr = s.handleTripCost()
		case "10":
			handlerErr = s.handleHighCost()
		case "11":
			handlerErr = s.handleDestinationInfo()
		case "0", "exit":
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "\nUnknown option.")
		}
		if handlerErr != nil {
			return s.finish(handlerErr)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out, "\nGoodbye!")
		return nil
	}
	return err
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "\n=== Travel Itinerary Manager ===")
	fmt.Fprintln(s.out, " 1) Create a new trip")
	fmt.Fprintln(s.out, " 2) View all trips")
	fmt.Fprintln(s.out, " 3) Select a trip")
	fmt.Fprintln(s.out, " 4) Delete a trip")
	fmt.Fprintln(s.out, "--- Activities ---")
	fmt.Fprintln(s.out, " 5) View activities (chronological)")
	fmt.Fprintln(s.out, " 6) Filter activities")
	fmt.Fprintln(s.out, " 7) Add a new activity")
	fmt.Fprintln(s.out, " 8) Delete an activity")
	fmt.Fprintln(s.out, "--- Budget ---")
	fmt.Fprintln(s.out, " 9) View trip total cost")
	fmt.Fprintln(s.out, "10) Find high-cost activities")
	fmt.Fprintln(s.out, "--- Info ---")
	fmt.Fprintln(s.out, "11) Get destination info")
	fmt.Fprintln(s.out, " 0) Exit")
}

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) readFloat(prompt string) (float64, error) {
	raw, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return f, nil
}

// requireSelected short-circuits trip-scoped actions when nothing is
// selected, without invoking the core.
func (s *Shell) requireSelected() bool {
	if s.selected == "" {
		fmt.Fprintln(s.out, "\nNo trip selected. Select a trip first!")
		return false
	}
	return true
}

func (s *Shell) printErr(err error) {
	switch {
	case errors.Is(err, models.ErrTripNotFound):
		fmt.Fprintln(s.out, "\nTrip not found!")
	case errors.Is(err, models.ErrInvalidCategory):
		fmt.Fprintln(s.out, "\nInvalid category. Pick one of: food, transport, sightseeing.")
	default:
		fmt.Fprintf(s.out, "\nSomething went wrong: %v\n", err)
		s.logger.Errorf(providers.TypeShell, "Operation failed: %s", err)
	}
}

func (s *Shell) handleCreateTrip() error {
	destination, err := s.readLine("Destination (country/city): ")
	if err != nil {
		return err
	}
	rawDate, err := s.readLine("Start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	startDate, err := time.ParseInLocation(dateLayout, rawDate, time.Local)
	if err != nil {
		fmt.Fprintf(s.out, "\nInvalid date %q. Use YYYY-MM-DD.\n", rawDate)
		return nil
	}

	tripID, err := s.trips.Create(destination, startDate)
	if err != nil {
		s.printErr(err)
		return nil
	}
	fmt.Fprintf(s.out, "\nTrip to %q created! (%s)\n", destination, tripID)
	return nil
}

func (s *Shell) handleViewTrips() error {
	trips, err := s.trips.List()
	if err != nil {
		s.printErr(err)
		return nil
	}
	if len(trips) == 0 {
		fmt.Fprintln(s.out, "\nNo trips found. Create one first!")
		return nil
	}

	fmt.Fprintln(s.out, "\n--- Your Trips ---")
	for _, t := range trips {
		fmt.Fprintf(s.out, "- %s (%s) | %d activities\n", t.Destination, t.ID, len(t.Activities))
	}
	return nil
}

// pickTrip lists all trips as numbered choices and returns the chosen id.
// Choice 0 backs out with ok=false.
func (s *Shell) pickTrip(prompt string) (string, bool, error) {
	trips, err := s.trips.List()
	if err != nil {
		s.printErr(err)
		return "", false, nil
	}
	if len(trips) == 0 {
		fmt.Fprintln(s.out, "\nNo trips found. Create one first!")
		return "", false, nil
	}

	fmt.Fprintln(s.out)
	for i, t := range trips {
		fmt.Fprintf(s.out, "%d) %s (%s)\n", i+1, t.Destination, t.ID)
	}
	fmt.Fprintln(s.out, "0) Back")

	raw, err := s.readLine(prompt)
	if err != nil {
		return "", false, err
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil || n < 0 || n > len(trips) {
		fmt.Fprintln(s.out, "\nUnknown option.")
		return "", false, nil
	}
	if n == 0 {
		return "", false, nil
	}
	return trips[n-1].ID, true, nil
}

func (s *Shell) handleSelectTrip() error {
	tripID, ok, err := s.pickTrip("Select a trip: ")
	if err != nil || !ok {
		return err
	}
	s.selected = tripID
	fmt.Fprintf(s.out, "\nNow working with trip: %s\n", tripID)
	return nil
}

func (s *Shell) handleDeleteTrip() error {
	tripID, ok, err := s.pickTrip("Select a trip to delete: ")
	if err != nil || !ok {
		return err
	}

	if err := s.trips.Delete(tripID); err != nil {
		s.printErr(err)
		return nil
	}
	if s.selected == tripID {
		s.selected = ""
	}
	fmt.Fprintf(s.out, "\nTrip %s deleted!\n", tripID)
	return nil
}

func (s *Shell) handleViewActivities() error {
	if !s.requireSelected() {
		return nil
	}

	activities, err := s.acts.ListChronological(s.selected)
	if err != nil {
		s.printErr(err)
		return nil
	}
	if len(activities) == 0 {
		fmt.Fprintln(s.out, "\nNo activities found.")
		return nil
	}

	fmt.Fprintln(s.out, "\n--- Activities (Chronological) ---")
	s.printActivities(activities)
	return nil
}

func (s *Shell) printActivities(activities []models.Activity) {
	for _, a := range activities {
		fmt.Fprintf(s.out, "- %s | $%g | %s | %s\n",
			a.Name, a.Cost, a.Category, a.StartTime.Local().Format("2006-01-02 15:04"))
	}
}

func (s *Shell) handleFilterActivities() error {
	if !s.requireSelected() {
		return nil
	}

	fmt.Fprintln(s.out, "\nFilter by:")
	fmt.Fprintln(s.out, "1) Category")
	fmt.Fprintln(s.out, "2) Day")
	fmt.Fprintln(s.out, "0) Back")
	choice, err := s.readLine("Choose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return s.filterByCategory()
	case "2":
		return s.filterByDay()
	case "0":
		return nil
	default:
		fmt.Fprintln(s.out, "\nUnknown option.")
		return nil
	}
}

func (s *Shell) filterByCategory() error {
	raw, err := s.readLine("Category (food/transport/sightseeing): ")
	if err != nil {
		return err
	}
	category, err := models.ParseCategory(raw)
	if err != nil {
		s.printErr(err)
		return nil
	}

	activities, err := s.acts.ListByCategory(s.selected, category)
	if err != nil {
		s.printErr(err)
		return nil
	}
	if len(activities) == 0 {
		fmt.Fprintf(s.out, "\nNo %s activities found.\n", category)
		return nil
	}

	fmt.Fprintf(s.out, "\n--- %s Activities ---\n", category)
	s.printActivities(activities)
	return nil
}

func (s *Shell) filterByDay() error {
	raw, err := s.readLine(`Enter a date (YYYY-MM-DD) or "back" to return: `)
	if err != nil {
		return err
	}
	if strings.EqualFold(raw, "back") {
		return nil
	}
	day, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		fmt.Fprintf(s.out, "\nInvalid date %q. Use YYYY-MM-DD.\n", raw)
		return nil
	}

	activities, err := s.acts.ListByDay(s.selected, day)
	if err != nil {
		s.printErr(err)
		return nil
	}
	if len(activities) == 0 {
		fmt.Fprintf(s.out, "\nNo activities found for %s. Check the date and try again.\n", raw)
		return nil
	}

	fmt.Fprintf(s.out, "\n--- Activities on %s ---\n", raw)
	s.printActivities(activities)
	return nil
}

func (s *Shell) handleAddActivity() error {
	if !s.requireSelected() {
		return nil
	}

	name, err := s.readLine("Activity name: ")
	if err != nil {
		return err
	}
	cost, err := s.readFloat("Cost ($): ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		fmt.Fprintln(s.out, "\nInvalid cost. Enter a number.")
		return nil
	}
	category, err := s.readLine("Category (food/transport/sightseeing): ")
	if err != nil {
		return err
	}
	rawStart, err := s.readLine("Start time (YYYY-MM-DDTHH:mm): ")
	if err != nil {
		return err
	}
	startTime, err := time.ParseInLocation(dateTimeLayout, rawStart, time.Local)
	if err != nil {
		fmt.Fprintf(s.out, "\nInvalid start time %q. Use YYYY-MM-DDTHH:mm.\n", rawStart)
		return nil
	}

	activity, err := s.acts.Add(s.selected, services.ActivityInput{
		Name:      name,
		Cost:      cost,
		Category:  category,
		StartTime: startTime,
	})
	if err != nil {
		s.printErr(err)
		return nil
	}
	fmt.Fprintf(s.out, "\nActivity %q added!\n", activity.Name)
	return nil
}

func (s *Shell) handleDeleteActivity() error {
	if !s.requireSelected() {
		return nil
	}

	activities, err := s.acts.ListChronological(s.selected)
	if err != nil {
		s.printErr(err)
		return nil
	}
	if len(activities) == 0 {
		fmt.Fprintln(s.out, "\nNo activities to delete.")
		return nil
	}

	fmt.Fprintln(s.out)
	for i, a := range activities {
		fmt.Fprintf(s.out, "%d) %s | $%g | %s\n", i+1, a.Name, a.Cost, a.Category)
	}
	fmt.Fprintln(s.out, "0) Back")

	raw, err := s.readLine("Select an activity to delete: ")
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil || n < 0 || n > len(activities) {
		fmt.Fprintln(s.out, "\nUnknown option.")
		return nil
	}
	if n == 0 {
		return nil
	}

	if err := s.acts.Delete(s.selected, activities[n-1].ID); err != nil {
		s.printErr(err)
		return nil
	}
	fmt.Fprintln(s.out, "\nActivity deleted!")
	return nil
}

func (s *Shell) handleTripCost() error {
	if !s.requireSelected() {
		return nil
	}

	total, err := s.budget.TotalCost(s.selected)
	if err != nil {
		s.printErr(err)
		return nil
	}
	fmt.Fprintf(s.out, "\nTrip total cost: $%g\n", total)
	return nil
}

func (s *Shell) handleHighCost() error {
	if !s.requireSelected() {
		return nil
	}

	threshold, err := s.readFloat("Enter cost threshold ($): ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		fmt.Fprintln(s.out, "\nInvalid threshold. Enter a number.")
		return nil
	}

	items, err := s.budget.HighCost(s.selected, threshold)
	if err != nil {
		s.printErr(err)
		return nil
	}
	if len(items) == 0 {
		fmt.Fprintf(s.out, "\nNo activities found above $%g.\n", threshold)
		return nil
	}

	fmt.Fprintf(s.out, "\n=== High Cost Activities (>= $%g) ===\n", threshold)
	fmt.Fprintf(s.out, "Found %d activities:\n\n", len(items))
	for _, a := range items {
		fmt.Fprintf(s.out, "- %s: $%g (%s)\n", a.Name, a.Cost, a.Category)
	}
	return nil
}

func (s *Shell) handleDestinationInfo() error {
	country, err := s.readLine(`Enter country name or "back" to return: `)
	if err != nil {
		return err
	}
	if strings.EqualFold(country, "back") {
		return nil
	}

	info, err := s.dest.Lookup(context.Background(), country)
	if err != nil {
		fmt.Fprintln(s.out, "\nCould not fetch destination info. Check the country name and try again.")
		return nil
	}

	fmt.Fprintf(s.out, "\n--- Destination Info: %s ---\n", country)
	fmt.Fprintf(s.out, "Currency: %s\n", info.Currency)
	fmt.Fprintf(s.out, "Flag: %s\n", info.Flag)
	return nil
}
