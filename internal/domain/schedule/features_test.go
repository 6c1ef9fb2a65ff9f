package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"colonoscopy-prep/internal/dates"
)

type scheduleScenario struct {
	examDate    string
	examClock   string
	lang        Language
	medication  Medication
	constipated bool

	events []PrepEvent
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func initializeScenario(sc *godog.ScenarioContext) {
	s := &scheduleScenario{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*s = scheduleScenario{lang: DefaultLanguage}
		return ctx, nil
	})

	sc.Step(`^an exam on "([^"]*)" at "([^"]*)"$`, s.anExamOn)
	sc.Step(`^the patient speaks "([^"]*)"$`, s.thePatientSpeaks)
	sc.Step(`^the prescribed medication is "([^"]*)"$`, s.thePrescribedMedicationIs)
	sc.Step(`^the patient is constipated$`, func() error { s.constipated = true; return nil })
	sc.Step(`^the patient is not constipated$`, func() error { s.constipated = false; return nil })
	sc.Step(`^the schedule is built$`, s.theScheduleIsBuilt)
	sc.Step(`^the schedule should be:$`, s.theScheduleShouldBe)
	sc.Step(`^the schedule should be empty$`, s.theScheduleShouldBeEmpty)
	sc.Step(`^the event "([^"]*)" should be titled "([^"]*)"$`, s.theEventShouldBeTitled)
}

func (s *scheduleScenario) anExamOn(date, clock string) error {
	s.examDate = date
	s.examClock = clock
	return nil
}

func (s *scheduleScenario) thePatientSpeaks(lang string) error {
	l, ok := ParseLanguage(lang)
	if !ok {
		return fmt.Errorf("unknown language %q", lang)
	}
	s.lang = l
	return nil
}

func (s *scheduleScenario) thePrescribedMedicationIs(med string) error {
	m, ok := ParseMedication(med)
	if !ok {
		return fmt.Errorf("unknown medication %q", med)
	}
	s.medication = m
	return nil
}

func (s *scheduleScenario) theScheduleIsBuilt() error {
	exam, _ := dates.NewParser(time.UTC, "").Combine(s.examDate, s.examClock)
	s.events = Build(exam, s.lang, s.constipated, s.medication)
	return nil
}

func (s *scheduleScenario) theScheduleShouldBe(table *godog.Table) error {
	rows := table.Rows[1:]
	if len(rows) != len(s.events) {
		return fmt.Errorf("expected %d events, got %d (%v)", len(rows), len(s.events), ids(s.events))
	}

	for i, row := range rows {
		wantID := EventID(row.Cells[0].Value)
		wantAt, err := time.ParseInLocation("2006-01-02T15:04", row.Cells[1].Value, time.UTC)
		if err != nil {
			return err
		}

		got := s.events[i]
		if got.ID != wantID {
			return fmt.Errorf("event %d: expected id %s, got %s", i, wantID, got.ID)
		}
		if !got.Instant.Equal(wantAt) {
			return fmt.Errorf("event %s: expected %s, got %s", wantID, wantAt, got.Instant)
		}
	}
	return nil
}

func (s *scheduleScenario) theScheduleShouldBeEmpty() error {
	if len(s.events) != 0 {
		return fmt.Errorf("expected empty schedule, got %v", ids(s.events))
	}
	return nil
}

func (s *scheduleScenario) theEventShouldBeTitled(id, title string) error {
	e, ok := Find(s.events, EventID(id))
	if !ok {
		return fmt.Errorf("event %s not in schedule", id)
	}
	if e.Title != title {
		return fmt.Errorf("event %s: expected title %q, got %q", id, title, e.Title)
	}
	return nil
}
