package core

// ArticulationRow states that SendingCourses, taken together, satisfy
// ReceivingCourse at ReceivingInstitution. One row per distinct
// (receiving course, sending institution) pair; SendingCourses is an AND
// group and is never empty.
type ArticulationRow struct {
	ReceivingInstitution string   `json:"receiving_institution" yaml:"receiving_institution"`
	ReceivingCourse      string   `json:"receiving_course" yaml:"receiving_course"`
	SendingInstitution   string   `json:"sending_institution" yaml:"sending_institution"`
	SendingCourses       []string `json:"sending_courses" yaml:"sending_courses"`
}

// SatisfiedBy reports whether every sending course is in selected.
func (r ArticulationRow) SatisfiedBy(selected map[string]struct{}) bool {
	if len(r.SendingCourses) == 0 {
		return false
	}
	for _, c := range r.SendingCourses {
		if _, ok := selected[c]; !ok {
			return false
		}
	}
	return true
}
