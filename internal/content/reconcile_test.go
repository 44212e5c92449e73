package content

import (
	"errors"
	"reflect"
	"testing"
)

func TestReconcileReplacesOnlyTargetSection(t *testing.T) {
	fresh := sampleDocument()
	edited := []SkillEntry{
		{ID: "skill-9", Name: "Kubernetes", Category: SkillCategoryTool, Proficiency: ProficiencyIntermediate},
	}

	out, err := Reconcile(fresh, SectionSkills, edited)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !reflect.DeepEqual(out.Skills, edited) {
		t.Fatalf("expected skills replaced, got %v", out.Skills)
	}
	if !reflect.DeepEqual(out.Experience, fresh.Experience) {
		t.Fatalf("expected experience untouched")
	}
	if !reflect.DeepEqual(out.PersonalInfo, fresh.PersonalInfo) {
		t.Fatalf("expected personalInfo untouched")
	}
}

func TestReconcilePersonalInfo(t *testing.T) {
	fresh := sampleDocument()
	edited := PersonalInfo{Name: "Grace Hopper", Title: "Rear Admiral", Bio: "Invented the compiler."}

	out, err := Reconcile(fresh, SectionPersonalInfo, edited)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if out.PersonalInfo == nil || out.PersonalInfo.Name != "Grace Hopper" {
		t.Fatalf("expected personalInfo replaced, got %+v", out.PersonalInfo)
	}
	if fresh.PersonalInfo.Name != "Ada Lovelace" {
		t.Fatalf("input document was mutated")
	}
}

func TestReconcileKeepsConcurrentEdits(t *testing.T) {
	// Editor A saved new skills after editor B loaded; B's projects save must
	// splice into the document that already carries A's skills.
	afterA := sampleDocument()
	afterA.Skills = []SkillEntry{{ID: "skill-a", Name: "Rust", Category: SkillCategoryTechnical}}

	editedByB := []ProjectEntry{{ID: "proj-b", Name: "Side Project", Description: "B's edit", Technologies: []string{"Go"}}}
	out, err := Reconcile(afterA, SectionProjects, editedByB)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if out.Skills[0].ID != "skill-a" {
		t.Fatalf("expected A's skills to survive B's save")
	}
	if out.Projects[0].ID != "proj-b" {
		t.Fatalf("expected B's projects applied")
	}
}

func TestReconcileRejectsWrongType(t *testing.T) {
	if _, err := Reconcile(sampleDocument(), SectionSkills, "not a list"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if _, err := Reconcile(sampleDocument(), SectionPersonalInfo, []SkillEntry{}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestReconcileUnknownSection(t *testing.T) {
	if _, err := Reconcile(sampleDocument(), Section("certifications"), nil); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}
