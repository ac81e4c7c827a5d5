package forms

import (
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/dayboard/internal/models"
)

func TestPlanTitles(t *testing.T) {
	in := PlanInput{Tasks: "  Buy milk \n\n- Call bank\n-   \n\tPack lunch"}
	want := []string{"Buy milk", "Call bank", "Pack lunch"}
	if got := in.Titles(); !reflect.DeepEqual(got, want) {
		t.Errorf("Titles() = %v, want %v", got, want)
	}
	if got := (PlanInput{Tasks: " \n "}).Titles(); got != nil {
		t.Errorf("blank plan should have no titles, got %v", got)
	}
}

func TestHabitSpec(t *testing.T) {
	tests := []struct {
		name string
		days []time.Weekday
		want models.FrequencyType
	}{
		{"none selected", nil, models.FrequencyDaily},
		{"all selected", []time.Weekday{0, 1, 2, 3, 4, 5, 6}, models.FrequencyDaily},
		{"some selected", []time.Weekday{time.Monday}, models.FrequencyCustom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := HabitInput{Title: " Walk ", Days: tt.days}.Spec()
			if spec.Frequency.Type != tt.want {
				t.Errorf("frequency = %s, want %s", spec.Frequency.Type, tt.want)
			}
			if spec.Title != "Walk" {
				t.Errorf("title not trimmed: %q", spec.Title)
			}
		})
	}
}

func TestValidators(t *testing.T) {
	if err := notBlank("title")("  "); err == nil {
		t.Error("blank title should fail")
	}
	if err := validDay(""); err != nil {
		t.Errorf("blank day should pass: %v", err)
	}
	if err := validDay("2026-13-01"); err == nil {
		t.Error("invalid day should fail")
	}
	if err := validDay("2026-03-10"); err != nil {
		t.Errorf("valid day failed: %v", err)
	}
}

func TestTaskInputNewTask(t *testing.T) {
	got := TaskInput{Title: " a ", Description: " b ", Due: " 2026-03-11 "}.NewTask()
	want := models.NewTask{Title: "a", Description: "b", DueDate: "2026-03-11"}
	if got != want {
		t.Errorf("NewTask() = %+v, want %+v", got, want)
	}
}
