package constants

import "time"

const (
	MAX_CIDS_PER_MIGRATION   = 100
	MAX_MIGRATIONS_PAGE_SIZE = 100
	MAX_UNIT_NAME_LENGTH     = 8
	HEALTH_CHECK_TIMEOUT     = 5 * time.Second
	REQUEST_ID_HEADER        = "X-Request-ID"
)
