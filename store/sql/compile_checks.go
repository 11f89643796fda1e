package sqlstore

import "github.com/goliatone/go-wekeza/api"

var (
	_ api.IntentStore    = (*IntentStore)(nil)
	_ api.IntentRecorder = (*IntentStore)(nil)
)
