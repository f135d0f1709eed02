// file: internals/features/school/timetables/service/scope.go
package service

import "github.com/google/uuid"

// TenantScope = konteks sekolah/session/user, eksplisit di-pass ke
// service alih-alih nyangkut sebagai state global.
type TenantScope struct {
	SchoolID  uuid.UUID
	SessionID uuid.UUID
	UserID    uuid.UUID
}
