package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gyruslabs/gyrus-api/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRoster checks a group's student list against its capacity and the
// per-student required fields. On success it returns the derived student
// count, which callers must persist as the group's current count.
//
// Duplicate registration numbers within a roster are allowed; rosters are
// imported from spreadsheets where the same regNo legitimately recurs, and
// a uniqueness constraint here was withdrawn after breaking those imports.
func ValidateRoster(roster []models.Student, maxStudents int) (int, error) {
	if len(roster) > maxStudents {
		return 0, &CapacityError{Limit: maxStudents, Attempted: len(roster)}
	}

	fields := map[string]string{}
	for i, student := range roster {
		prefix := fmt.Sprintf("students[%d]", i)

		if strings.TrimSpace(student.Name) == "" {
			fields[prefix+".name"] = "student name is required"
		}
		if strings.TrimSpace(student.RegNo) == "" {
			fields[prefix+".regNo"] = "registration number is required"
		}
		switch {
		case strings.TrimSpace(student.Email) == "":
			fields[prefix+".email"] = "student email is required"
		case !emailPattern.MatchString(student.Email):
			fields[prefix+".email"] = "please enter a valid email"
		}
		switch {
		case strings.TrimSpace(student.Gender) == "":
			fields[prefix+".gender"] = "gender is required"
		case !models.ValidGender(student.Gender):
			fields[prefix+".gender"] = "gender must be Male, Female or Other"
		}
		if student.DOB.IsZero() {
			fields[prefix+".dob"] = "date of birth is required"
		}
	}

	if len(fields) > 0 {
		return 0, &ValidationError{Fields: fields}
	}

	return len(roster), nil
}
