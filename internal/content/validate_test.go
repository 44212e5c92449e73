package content

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateShapeAcceptsCompleteDocument(t *testing.T) {
	if err := ValidateShape(sampleDocument()); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestValidateShapeMissingFields(t *testing.T) {
	doc := sampleDocument()
	doc.PersonalInfo = nil
	doc.Education = nil

	err := ValidateShape(doc)
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "personalInfo") || !strings.Contains(msg, "education") {
		t.Fatalf("expected missing field names in error, got %q", msg)
	}
}

func TestValidateShapeAllowsAbsentOptionalCollections(t *testing.T) {
	doc := sampleDocument()
	doc.Skills = nil
	doc.Projects = nil
	doc.SocialLinks = nil

	if err := ValidateShape(doc); err != nil {
		t.Fatalf("expected optional collections to be allowed absent, got %v", err)
	}
	if err := ValidateSchema(doc); err != nil {
		t.Fatalf("expected schema to accept absent optional collections, got %v", err)
	}
}

func TestValidateSchemaAcceptsDefaults(t *testing.T) {
	if err := ValidateSchema(DefaultDocument()); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestValidateSchemaRejectsBadCategory(t *testing.T) {
	doc := sampleDocument()
	doc.Skills[0].Category = "wizardry"

	if err := ValidateSchema(doc); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestValidateSchemaRejectsBadProficiency(t *testing.T) {
	doc := sampleDocument()
	doc.Skills[0].Proficiency = "legendary"

	if err := ValidateSchema(doc); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestIsComplete(t *testing.T) {
	if !IsComplete(DefaultDocument()) {
		t.Fatalf("expected defaults to be complete")
	}

	missingInfo := sampleDocument()
	missingInfo.PersonalInfo = nil
	if IsComplete(missingInfo) {
		t.Fatalf("expected document without personalInfo to be incomplete")
	}

	// An empty collection counts the same as a missing one.
	emptySkills := sampleDocument()
	emptySkills.Skills = []SkillEntry{}
	if IsComplete(emptySkills) {
		t.Fatalf("expected document with empty skills to be incomplete")
	}

	nilProjects := sampleDocument()
	nilProjects.Projects = nil
	if IsComplete(nilProjects) {
		t.Fatalf("expected document with nil projects to be incomplete")
	}
}
