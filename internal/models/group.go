package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Student gender values accepted on a roster entry.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Sections a group may belong to.
var GroupSections = []string{"11", "12"}

// Group capacity bounds.
const (
	MinGroupCapacity     = 1
	MaxGroupCapacity     = 100
	DefaultGroupCapacity = 100
)

// Student is a roster entry embedded in a Group. It has no identity of its
// own outside its parent group.
type Student struct {
	Name   string    `json:"name"`
	RegNo  string    `json:"regNo"`
	Email  string    `json:"email"`
	Gender string    `json:"gender"`
	DOB    time.Time `json:"dob"`
}

// UnmarshalJSON accepts either a full student object or a bare email string.
// Rosters written by earlier schema revisions stored plain email arrays.
func (s *Student) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var email string
		if err := json.Unmarshal(data, &email); err != nil {
			return err
		}
		*s = Student{Email: email}
		return nil
	}

	type alias Student
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*s = Student(decoded)
	return nil
}

// Matches reports whether the roster entry answers to the claimed
// credentials: name is compared case-insensitively, registration numbers
// are upper-cased on both sides.
func (s Student) Matches(name, regNo string) bool {
	return strings.EqualFold(s.Name, name) &&
		strings.ToUpper(s.RegNo) == strings.ToUpper(regNo)
}

// StudentRoster is the ordered student list persisted as a JSON column.
type StudentRoster []Student

// Value serialises the roster for storage.
func (r StudentRoster) Value() (driver.Value, error) {
	if r == nil {
		r = StudentRoster{}
	}
	return json.Marshal(r)
}

// Scan restores the roster from its stored JSON form.
func (r *StudentRoster) Scan(value interface{}) error {
	if value == nil {
		*r = StudentRoster{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported roster column type %T", value)
	}

	if len(data) == 0 {
		*r = StudentRoster{}
		return nil
	}

	return json.Unmarshal(data, r)
}

// GormDataType tells the migrator to use a JSON column.
func (StudentRoster) GormDataType() string {
	return "json"
}

// Group is a named cohort of students owned by one teacher. The teacher is
// referenced by email only; the link is a soft reference with no enforced
// integrity.
type Group struct {
	ID                  uint          `gorm:"primaryKey" json:"id"`
	GroupName           string        `gorm:"size:255;not null" json:"groupName"`
	Section             string        `gorm:"size:8;not null" json:"section"`
	TeacherEmail        string        `gorm:"size:255;not null;index" json:"teacherEmail"`
	Students            StudentRoster `gorm:"type:json" json:"students"`
	MaxStudents         int           `gorm:"not null;default:100" json:"maxStudents"`
	CurrentStudentCount int           `gorm:"not null;default:0" json:"currentStudentCount"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// FindStudent returns the roster entry matching the claimed credentials.
func (g Group) FindStudent(name, regNo string) (Student, bool) {
	for _, student := range g.Students {
		if student.Matches(name, regNo) {
			return student, true
		}
	}
	return Student{}, false
}

// ValidSection reports whether the value is one of the recognised sections.
func ValidSection(section string) bool {
	for _, s := range GroupSections {
		if s == section {
			return true
		}
	}
	return false
}

// ValidGender reports whether the value is an accepted gender label.
func ValidGender(gender string) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}
