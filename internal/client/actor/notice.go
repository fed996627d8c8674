package actor

import (
	"time"

	"github.com/google/uuid"
)

type NoticeKind string

const (
	NoticeNoData         NoticeKind = "no_data"
	NoticeEmptyCatalog   NoticeKind = "empty_catalog"
	NoticeNotFound       NoticeKind = "not_found"
	NoticeFavoriteFailed NoticeKind = "favorite_failed"
	NoticeRefreshFailed  NoticeKind = "refresh_failed"
	NoticeSettingsFailed NoticeKind = "settings_failed"
)

// Notice is a transient, non-fatal message for the user.
type Notice struct {
	ID      uuid.UUID
	Kind    NoticeKind
	Message string
	At      time.Time
}
