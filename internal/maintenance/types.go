package maintenance

// ResyncOutput counts the schedules handled by one calendar resync.
type ResyncOutput struct {
	Synced int
	Failed int
}

// PurgeOutput counts the inbox items removed by one purge.
type PurgeOutput struct {
	Removed int
}
