// Package console is the line-oriented operator frontend. It stands in for
// the browser host: every command is translated into a navigation or usecase
// call, and the resolved view is printed back.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"ambulance-reservation-console/internal/calendar"
	"ambulance-reservation-console/internal/domain/entity"
	"ambulance-reservation-console/internal/domain/gateway"
	"ambulance-reservation-console/internal/navigation"
	"ambulance-reservation-console/internal/usecase"
	"ambulance-reservation-console/pkg/validator"
)

type Console struct {
	log       *logrus.Logger
	validator *validator.CustomValidator
	resolver  *navigation.Resolver
	shell     usecase.Shell

	ambulanceGw   gateway.AmbulanceGateway
	patientGw     gateway.PatientGateway
	reservationGw gateway.ReservationGateway

	newSurface calendar.Factory

	// Active per-view collaborators, created lazily when their view mounts.
	booking  usecase.BookingFlow
	calendar usecase.CalendarSync
	detail   usecase.ReservationDetail

	// calendarSelection is the identity the mounted calendar acts as;
	// detailID is the reservation the detail panel has loaded. Both drive
	// the create/switch/refetch decisions in syncCollaborators.
	calendarSelection entity.Selection
	detailID          string

	in  io.Reader
	out io.Writer
	ctx context.Context
}

func NewConsole(
	log *logrus.Logger,
	v *validator.CustomValidator,
	resolver *navigation.Resolver,
	shell usecase.Shell,
	ambulanceGw gateway.AmbulanceGateway,
	patientGw gateway.PatientGateway,
	reservationGw gateway.ReservationGateway,
	newSurface calendar.Factory,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		log:           log,
		validator:     v,
		resolver:      resolver,
		shell:         shell,
		ambulanceGw:   ambulanceGw,
		patientGw:     patientGw,
		reservationGw: reservationGw,
		newSurface:    newSurface,
		in:            in,
		out:           out,
	}
}

// Run reads commands until EOF or context cancellation.
func (c *Console) Run(ctx context.Context) error {
	c.ctx = ctx
	c.shell.OnNotice(func(message string) {
		fmt.Fprintf(c.out, "!! %s\n", message)
	})
	c.shell.Init(ctx)
	c.render()

	scanner := bufio.NewScanner(c.in)
	fmt.Fprint(c.out, "> ")
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}
		if line != "" {
			c.dispatch(line)
		}
		fmt.Fprint(c.out, "> ")
	}
	c.teardown()
	return scanner.Err()
}

func (c *Console) teardown() {
	if c.calendar != nil {
		c.calendar.Unmount()
		c.calendar = nil
	}
}

func (c *Console) dispatch(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		c.printHelp()
	case "ls":
		c.render()
	case "go":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "usage: go <path>")
			return
		}
		c.shell.Navigate(args[0])
		c.render()
	case "select":
		c.handleSelect(args)
	case "deselect":
		c.shell.ClearSelection()
		c.shell.Navigate(c.resolver.RootPath())
		c.render()
	case "refresh":
		c.shell.RefreshAmbulances(c.ctx)
		c.shell.RefreshPatients(c.ctx)
		c.render()
	case "create-ambulance":
		c.handleCreateAmbulance(strings.TrimPrefix(line, "create-ambulance "))
	case "update-ambulance":
		c.handleUpdateAmbulance(strings.TrimPrefix(line, "update-ambulance "))
	case "delete-ambulance":
		c.handleDeleteAmbulance()
	case "create-patient":
		c.handleCreatePatient(strings.TrimPrefix(line, "create-patient "))
	case "update-patient":
		c.handleUpdatePatient(strings.TrimPrefix(line, "update-patient "))
	case "delete-patient":
		c.handleDeletePatient()
	case "book-slot":
		c.handleBookSlot(args)
	case "search":
		c.handleSearch(args)
	case "pick":
		c.handlePick(args)
	case "open":
		c.handleOpen(args)
	case "close":
		c.handleClose()
	case "edit":
		c.handleEdit(strings.TrimPrefix(line, "edit "))
	case "delete":
		c.handleDeleteReservation()
	case "confirm":
		c.handleConfirmDelete()
	case "cancel":
		c.handleCancelDelete()
	case "toast":
		c.printToast()
	case "dismiss":
		c.shell.DismissToast()
	default:
		fmt.Fprintf(c.out, "unknown command %q; try help\n", cmd)
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `commands:
  ls                                      show the current view
  go <path>                               navigate to a route path
  select ambulance <n> | patient <n>      act as the n-th directory entry
  deselect                                drop the acting identity
  refresh                                 refetch both directories
  create-ambulance name|address|exams|open|close
  update-ambulance name|address|exams|open|close
  delete-ambulance
  create-patient first|last|birthday|sex|bio
  update-patient first|last|birthday|sex|bio
  delete-patient
  book-slot                               enter the booking flow (patient only)
  search <YYYY-MM-DD> <examination type>  find candidate slots
  pick <n>                                book the n-th candidate
  open <reservation id>                   open a reservation's detail panel
  close                                   close the detail panel
  edit <message>                          change the reservation message
  delete | confirm | cancel               delete with confirmation
  toast | dismiss                         show or dismiss the active toast
  quit
`)
}

/* NAVIGATION AND RENDERING */

// render resolves the current path and prints the mounted view, keeping the
// per-view collaborators in step with what is on screen.
func (c *Console) render() {
	resolution := c.shell.Resolve()
	c.syncCollaborators(resolution)

	switch resolution.View {
	case navigation.ViewEntityPicker:
		c.renderEntityPicker()
	case navigation.ViewAmbulanceCreate:
		fmt.Fprintln(c.out, "[new ambulance] use: create-ambulance name|address|exams|open|close")
	case navigation.ViewPatientCreate:
		fmt.Fprintln(c.out, "[new patient] use: create-patient first|last|birthday|sex|bio")
	case navigation.ViewProfile:
		c.renderProfile(resolution)
	case navigation.ViewReservations:
		c.renderReservations()
	case navigation.ViewReservationCreate:
		c.renderBooking()
	case navigation.ViewReservationDetail:
		c.renderDetail(resolution)
	}
	c.printToast()
}

// syncCollaborators creates or drops the booking flow, calendar sync, and
// detail panel to match the resolved view.
func (c *Console) syncCollaborators(resolution navigation.Resolution) {
	selection := c.shell.Selection()

	switch resolution.View {
	case navigation.ViewReservations:
		switch {
		case c.calendar == nil:
			c.calendar = usecase.NewCalendarSync(
				c.log, c.reservationGw, c.newSurface, selection,
				func(outcome entity.Outcome) { c.shell.ApplyOutcome(c.ctx, outcome) },
				c.shell.ClearCreatedReservation,
			)
			c.calendarSelection = selection
			if err := c.calendar.Mount(c.ctx); err != nil {
				fmt.Fprintf(c.out, "!! An error occurred while loading reservations. Please try again.\n")
			}
		case c.calendarSelection.Kind() != selection.Kind() || c.calendarSelection.EntityID() != selection.EntityID():
			// The acting entity changed under a mounted calendar; hand it the
			// new identity so it tears down and refetches.
			c.calendarSelection = selection
			if err := c.calendar.SetActingEntity(c.ctx, selection); err != nil {
				fmt.Fprintf(c.out, "!! An error occurred while loading reservations. Please try again.\n")
			}
		}
		if created := c.shell.CreatedReservation(); created != nil {
			c.calendar.ShowCreated(*created)
		}
	case navigation.ViewReservationDetail:
		// The detail panel sits on top of the calendar; a deep link without a
		// mounted calendar is still valid, so nothing is created here.
	default:
		if c.calendar != nil {
			c.calendar.Unmount()
			c.calendar = nil
			c.calendarSelection = entity.NoSelection()
		}
	}

	if resolution.View == navigation.ViewReservationCreate {
		if c.booking == nil {
			patient := selection.Patient()
			c.booking = usecase.NewBookingFlow(c.log, c.validator, c.patientGw, c.reservationGw, *patient)
		}
	} else {
		c.booking = nil
	}

	if resolution.View == navigation.ViewReservationDetail {
		if c.detail == nil {
			c.detail = usecase.NewReservationDetail(c.log, c.reservationGw, selection)
		}
		// Fetch only on open or when the id changes; re-rendering the same
		// panel must not hit the gateway again. A failed load leaves the id
		// unrecorded so the next render retries.
		if c.detailID != resolution.ReservationID {
			if err := c.detail.Load(c.ctx, resolution.ReservationID); err != nil {
				fmt.Fprintf(c.out, "!! An error occurred while loading the reservation. Please try again.\n")
			} else {
				c.detailID = resolution.ReservationID
			}
		}
	} else {
		c.detail = nil
		c.detailID = ""
	}
}

func (c *Console) renderEntityPicker() {
	ambulances := c.shell.Ambulances()
	patients := c.shell.Patients()
	if len(ambulances) == 0 && len(patients) == 0 {
		fmt.Fprintln(c.out, "There are no ambulances or patients to select.")
		return
	}
	fmt.Fprintln(c.out, "[entity picker]")
	for i, a := range ambulances {
		fmt.Fprintf(c.out, "  ambulance %d: %s (%s)\n", i+1, a.Name, a.Address)
	}
	for i, p := range patients {
		fmt.Fprintf(c.out, "  patient %d: %s\n", i+1, p.FullName())
	}
}

func (c *Console) renderProfile(resolution navigation.Resolution) {
	if resolution.Kind == entity.SelectionAmbulance {
		ambulance, err := c.ambulanceGw.GetByID(c.ctx, resolution.EntityID)
		if err != nil {
			fmt.Fprintln(c.out, "!! An error occurred while loading the ambulance. Please try again.")
			return
		}
		fmt.Fprintf(c.out, "[ambulance profile] %s\n  address: %s\n  office hours: %s-%s\n",
			ambulance.Name, ambulance.Address, ambulance.OfficeHours.Open, ambulance.OfficeHours.Close)
		for _, t := range ambulance.MedicalExaminations {
			fmt.Fprintf(c.out, "  provides: %s\n", t.Label())
		}
		return
	}

	patient, err := c.patientGw.GetByID(c.ctx, resolution.EntityID)
	if err != nil {
		fmt.Fprintln(c.out, "!! An error occurred while loading the patient. Please try again.")
		return
	}
	fmt.Fprintf(c.out, "[patient profile] %s\n  birthday: %s\n  sex: %s\n",
		patient.FullName(), patient.Birthday, patient.Sex.Label())
	if patient.Bio != "" {
		fmt.Fprintf(c.out, "  bio: %s\n", patient.Bio)
	}
}

func (c *Console) renderReservations() {
	selection := c.shell.Selection()
	fmt.Fprintf(c.out, "[reservations] acting as %s\n", selection.DisplayName())
	reservations := c.calendar.Reservations()
	if len(reservations) == 0 {
		fmt.Fprintln(c.out, "  no reservations")
		return
	}
	for _, r := range reservations {
		fmt.Fprintf(c.out, "  %s  %s - %s  %s\n",
			r.ID, r.Start.Format("2006-01-02 15:04"), r.End.Format("15:04"), c.eventTitle(selection, r))
	}
}

func (c *Console) eventTitle(selection entity.Selection, r entity.Reservation) string {
	if selection.Kind() == entity.SelectionAmbulance {
		return r.Patient.FullName() + " / " + r.ExaminationType.Label()
	}
	return r.Ambulance.Name + " / " + r.ExaminationType.Label()
}

func (c *Console) renderBooking() {
	patient := c.booking.Patient()
	fmt.Fprintf(c.out, "[new reservation] for %s\n", patient.FullName())
	candidates := c.booking.Candidates()
	switch {
	case !c.booking.Searched():
		fmt.Fprintln(c.out, "  use: search <YYYY-MM-DD> <examination type>")
	case len(candidates) == 0:
		fmt.Fprintln(c.out, "  No available slots for the selected date and examination type.")
	default:
		for i, candidate := range candidates {
			fmt.Fprintf(c.out, "  %d: %s  %s - %s  %s\n", i+1,
				candidate.Ambulance.Name,
				candidate.Start.Format("2006-01-02 15:04"),
				candidate.End.Format("15:04"),
				candidate.ExaminationType.Label())
		}
	}
}

func (c *Console) renderDetail(resolution navigation.Resolution) {
	reservation := c.detail.Reservation()
	if reservation == nil {
		fmt.Fprintln(c.out, "  reservation not loaded")
		return
	}
	fmt.Fprintf(c.out, "[reservation detail] %s\n", reservation.ID)
	fmt.Fprintf(c.out, "  ambulance: %s\n", reservation.Ambulance.Name)
	fmt.Fprintf(c.out, "  patient:   %s\n", reservation.Patient.FullName())
	fmt.Fprintf(c.out, "  exam:      %s\n", reservation.ExaminationType.Label())
	fmt.Fprintf(c.out, "  when:      %s - %s\n",
		reservation.Start.Format("2006-01-02 15:04"), reservation.End.Format("15:04"))
	if reservation.Message != "" {
		fmt.Fprintf(c.out, "  message:   %s\n", reservation.Message)
	}
	if !c.detail.CanEdit() {
		fmt.Fprintln(c.out, "  (read-only)")
	}
	if c.detail.DeleteRequested() {
		fmt.Fprintln(c.out, "  delete requested; confirm or cancel")
	}
}

func (c *Console) printToast() {
	if toast := c.shell.Toast(); toast != nil {
		fmt.Fprintf(c.out, "[toast:%s] %s", toast.Variant, toast.Message)
		if toast.Description != "" {
			fmt.Fprintf(c.out, " — %s", toast.Description)
		}
		fmt.Fprintln(c.out)
	}
}

/* SELECTION */

func (c *Console) handleSelect(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "usage: select ambulance <n> | select patient <n>")
		return
	}
	index, err := strconv.Atoi(args[1])
	if err != nil || index < 1 {
		fmt.Fprintln(c.out, "usage: select ambulance <n> | select patient <n>")
		return
	}

	switch args[0] {
	case "ambulance":
		ambulances := c.shell.Ambulances()
		if index > len(ambulances) {
			fmt.Fprintln(c.out, "no such ambulance")
			return
		}
		c.shell.SelectAmbulance(ambulances[index-1])
	case "patient":
		patients := c.shell.Patients()
		if index > len(patients) {
			fmt.Fprintln(c.out, "no such patient")
			return
		}
		c.shell.SelectPatient(patients[index-1])
	default:
		fmt.Fprintln(c.out, "usage: select ambulance <n> | select patient <n>")
		return
	}

	c.shell.Navigate(c.resolver.ReservationsPath(c.shell.Selection()))
	c.render()
}

/* PROFILE LIFECYCLE */

func (c *Console) handleCreateAmbulance(input string) {
	ambulance, ok := c.parseAmbulance(input)
	if !ok {
		return
	}
	created, err := c.ambulanceGw.Create(c.ctx, ambulance)
	if err != nil {
		fmt.Fprintln(c.out, "!! An error occurred while creating the ambulance. Please try again.")
		return
	}
	c.shell.ApplyOutcome(c.ctx, entity.AmbulanceCreated{Ambulance: *created})
	c.render()
}

func (c *Console) handleUpdateAmbulance(input string) {
	selection := c.shell.Selection()
	if selection.Kind() != entity.SelectionAmbulance {
		fmt.Fprintln(c.out, "select an ambulance first")
		return
	}
	ambulance, ok := c.parseAmbulance(input)
	if !ok {
		return
	}
	ambulance.ID = selection.EntityID()
	updated, err := c.ambulanceGw.Update(c.ctx, ambulance.ID, ambulance)
	if err != nil {
		fmt.Fprintln(c.out, "!! An error occurred while updating the ambulance. Please try again.")
		return
	}
	c.shell.ApplyOutcome(c.ctx, entity.AmbulanceUpdated{Ambulance: *updated})
	c.render()
}

func (c *Console) handleDeleteAmbulance() {
	selection := c.shell.Selection()
	if selection.Kind() != entity.SelectionAmbulance {
		fmt.Fprintln(c.out, "select an ambulance first")
		return
	}
	name := selection.DisplayName()
	if err := c.ambulanceGw.Delete(c.ctx, selection.EntityID()); err != nil {
		fmt.Fprintln(c.out, "!! An error occurred while deleting the ambulance. Please try again.")
		return
	}
	c.shell.ApplyOutcome(c.ctx, entity.AmbulanceDeleted{Name: name})
	c.render()
}

func (c *Console) parseAmbulance(input string) (entity.Ambulance, bool) {
	parts := strings.Split(input, "|")
	if len(parts) != 5 {
		fmt.Fprintln(c.out, "usage: name|address|exam1,exam2|HH:MM|HH:MM")
		return entity.Ambulance{}, false
	}
	ambulance := entity.Ambulance{
		Name:    strings.TrimSpace(parts[0]),
		Address: strings.TrimSpace(parts[1]),
		OfficeHours: entity.OfficeHours{
			Open:  strings.TrimSpace(parts[3]),
			Close: strings.TrimSpace(parts[4]),
		},
	}
	for _, raw := range strings.Split(parts[2], ",") {
		examinationType := entity.ExaminationType(strings.TrimSpace(raw))
		if !examinationType.IsValid() {
			fmt.Fprintf(c.out, "unknown examination type %q\n", raw)
			return entity.Ambulance{}, false
		}
		ambulance.MedicalExaminations = append(ambulance.MedicalExaminations, examinationType)
	}
	if !ambulance.OfficeHours.IsValid() {
		fmt.Fprintln(c.out, "office hours must be HH:MM and open before close")
		return entity.Ambulance{}, false
	}
	return ambulance, true
}

func (c *Console) handleCreatePatient(input string) {
	patient, ok := c.parsePatient(input)
	if !ok {
		return
	}
	created, err := c.patientGw.Create(c.ctx, patient)
	if err != nil {
		fmt.Fprintln(c.out, "!! An error occurred while creating the patient. Please try again.")
		return
	}
	c.shell.ApplyOutcome(c.ctx, entity.PatientCreated{Patient: *created})
	c.render()
}

func (c *Console) handleUpdatePatient(input string) {
	selection := c.shell.Selection()
	if selection.Kind() != entity.SelectionPatient {
		fmt.Fprintln(c.out, "select a patient first")
		return
	}
	patient, ok := c.parsePatient(input)
	if !ok {
		return
	}
	patient.ID = selection.EntityID()
	updated, err := c.patientGw.Update(c.ctx, patient.ID, patient)
	if err != nil {
		fmt.Fprintln(c.out, "!! An error occurred while updating the patient. Please try again.")
		return
	}
	c.shell.ApplyOutcome(c.ctx, entity.PatientUpdated{Patient: *updated})
	c.render()
}

func (c *Console) handleDeletePatient() {
	selection := c.shell.Selection()
	if selection.Kind() != entity.SelectionPatient {
		fmt.Fprintln(c.out, "select a patient first")
		return
	}
	name := selection.DisplayName()
	if err := c.patientGw.Delete(c.ctx, selection.EntityID()); err != nil {
		fmt.Fprintln(c.out, "!! An error occurred while deleting the patient. Please try again.")
		return
	}
	c.shell.ApplyOutcome(c.ctx, entity.PatientDeleted{Name: name})
	c.render()
}

func (c *Console) parsePatient(input string) (entity.Patient, bool) {
	parts := strings.Split(input, "|")
	if len(parts) < 4 {
		fmt.Fprintln(c.out, "usage: first|last|YYYY-MM-DD|male/female|bio")
		return entity.Patient{}, false
	}
	patient := entity.Patient{
		FirstName: strings.TrimSpace(parts[0]),
		LastName:  strings.TrimSpace(parts[1]),
		Birthday:  strings.TrimSpace(parts[2]),
		Sex:       entity.Sex(strings.TrimSpace(parts[3])),
	}
	if len(parts) > 4 {
		patient.Bio = strings.TrimSpace(parts[4])
	}
	return patient, true
}

/* BOOKING */

func (c *Console) handleBookSlot(_ []string) {
	selection := c.shell.Selection()
	if selection.Kind() != entity.SelectionPatient {
		fmt.Fprintln(c.out, "select a patient first")
		return
	}
	c.shell.Navigate(c.resolver.ReservationCreatePath(selection.EntityID()))
	c.render()
}

func (c *Console) handleSearch(args []string) {
	if c.booking == nil {
		fmt.Fprintln(c.out, "not in the booking flow; use book-slot")
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(c.out, "usage: search <YYYY-MM-DD> <examination type>")
		return
	}

	_, fieldErrors, err := c.booking.Search(c.ctx, entity.ExaminationQuery{
		Date:            args[0],
		ExaminationType: entity.ExaminationType(args[1]),
	})
	if err != nil {
		fmt.Fprintf(c.out, "!! %s\n", err.Error())
		return
	}
	if len(fieldErrors) > 0 {
		for field, message := range fieldErrors {
			fmt.Fprintf(c.out, "  %s: %s\n", field, message)
		}
		return
	}
	c.renderBooking()
}

func (c *Console) handlePick(args []string) {
	if c.booking == nil {
		fmt.Fprintln(c.out, "not in the booking flow; use book-slot")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: pick <n>")
		return
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		fmt.Fprintln(c.out, "usage: pick <n>")
		return
	}

	reservation, err := c.booking.Book(c.ctx, index-1)
	if err != nil {
		fmt.Fprintf(c.out, "!! %s\n", err.Error())
		return
	}
	c.shell.ApplyOutcome(c.ctx, entity.ReservationCreated{Reservation: *reservation})
	c.render()
}

/* DETAIL */

func (c *Console) handleOpen(args []string) {
	if c.calendar == nil {
		fmt.Fprintln(c.out, "open the reservations view first")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: open <reservation id>")
		return
	}
	if err := c.calendar.OpenReservation(args[0]); err != nil {
		fmt.Fprintf(c.out, "!! %s\n", err.Error())
		return
	}
	c.shell.Navigate(c.resolver.ReservationDetailPath(c.shell.Selection(), args[0]))
	c.render()
}

func (c *Console) handleClose() {
	if c.calendar == nil || !c.calendar.ClosePanel() {
		return
	}
	c.shell.Navigate(c.resolver.ReservationsPath(c.shell.Selection()))
	c.render()
}

func (c *Console) handleEdit(message string) {
	if c.detail == nil {
		fmt.Fprintln(c.out, "open a reservation first")
		return
	}
	updated, err := c.detail.Update(c.ctx, message)
	if err != nil {
		fmt.Fprintf(c.out, "!! %s\n", err.Error())
		return
	}
	if c.calendar != nil {
		if err := c.calendar.ApplyReservationUpdated(c.ctx, *updated); err != nil {
			fmt.Fprintln(c.out, "!! An error occurred while loading reservations. Please try again.")
		}
	}
	c.shell.Navigate(c.resolver.ReservationsPath(c.shell.Selection()))
	c.render()
}

func (c *Console) handleDeleteReservation() {
	if c.detail == nil {
		fmt.Fprintln(c.out, "open a reservation first")
		return
	}
	c.detail.RequestDelete()
	fmt.Fprintln(c.out, "delete requested; confirm or cancel")
}

func (c *Console) handleCancelDelete() {
	if c.detail != nil {
		c.detail.CancelDelete()
	}
}

func (c *Console) handleConfirmDelete() {
	if c.detail == nil {
		fmt.Fprintln(c.out, "open a reservation first")
		return
	}
	reservation := c.detail.Reservation()
	if err := c.detail.ConfirmDelete(c.ctx); err != nil {
		fmt.Fprintf(c.out, "!! %s\n", err.Error())
		return
	}
	if c.calendar != nil && reservation != nil {
		if err := c.calendar.ApplyReservationDeleted(c.ctx, reservation.ID); err != nil {
			fmt.Fprintln(c.out, "!! An error occurred while loading reservations. Please try again.")
		}
	}
	c.shell.Navigate(c.resolver.ReservationsPath(c.shell.Selection()))
	c.render()
}
