// Package models defines client-side data models used by the SkillSync CLI.
package models

// DefaultRole is assumed when the backend did not assign one.
const DefaultRole = "user"

// User is the cached profile record mirrored to the durable session store.
// Optional fields stay at their zero values until the backend fills them in
// (e.g. Skills appear only after a resume has been parsed).
type User struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Skills         []string `json:"skills,omitempty"`
	ResumeUploaded bool     `json:"resume_uploaded,omitempty"`
	Role           string   `json:"role,omitempty"`
}

// RoleName returns the assigned role, falling back to DefaultRole.
func (u *User) RoleName() string {
	if u == nil || u.Role == "" {
		return DefaultRole
	}
	return u.Role
}

// UserPatch is a partial profile update. Nil fields keep the current value;
// set fields overwrite it wholesale (Skills replaces the whole list, it is
// never merged element-wise).
type UserPatch struct {
	Name           *string
	Email          *string
	Skills         *[]string
	ResumeUploaded *bool
	Role           *string
}

// Merge returns a copy of u with the patch's set fields overwritten.
// The receiver is left untouched.
func (u User) Merge(p UserPatch) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Skills != nil {
		u.Skills = append([]string(nil), (*p.Skills)...)
	}
	if p.ResumeUploaded != nil {
		u.ResumeUploaded = *p.ResumeUploaded
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}

// PatchFrom builds a patch that overwrites every field with the values of
// other. Used when the backend returns a full refreshed profile.
func PatchFrom(other *User) UserPatch {
	if other == nil {
		return UserPatch{}
	}
	skills := append([]string(nil), other.Skills...)
	return UserPatch{
		Name:           &other.Name,
		Email:          &other.Email,
		Skills:         &skills,
		ResumeUploaded: &other.ResumeUploaded,
		Role:           &other.Role,
	}
}
