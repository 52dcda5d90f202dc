package job

import "context"

func (s *Scheduler) resyncCalendar(ctx context.Context) {
	out, err := s.uc.ResyncCalendar(ctx)
	if err != nil {
		s.l.Errorf(ctx, "job.resyncCalendar: %v", err)
		return
	}
	if out.Synced+out.Failed > 0 {
		s.l.Infof(ctx, "job.resyncCalendar: synced=%d failed=%d", out.Synced, out.Failed)
	}
}

func (s *Scheduler) purgeInbox(ctx context.Context) {
	out, err := s.uc.PurgeInbox(ctx)
	if err != nil {
		s.l.Errorf(ctx, "job.purgeInbox: %v", err)
		return
	}
	s.l.Infof(ctx, "job.purgeInbox: removed=%d", out.Removed)
}
