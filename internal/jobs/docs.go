// Package jobs runs background maintenance on a cron schedule.
//
// EmptyOrderPurgeJob deletes orders that are still PREPARING_FOR_DELIVERY
// and no longer hold any product. Each run uses its own unit of work through
// PurgeEmptyOrdersCommandHandler. Failures are logged and retried on the next
// tick.
//
//	purge := jobs.NewEmptyOrderPurgeJob(handler, "0 * * * * *", 100, logger)
//	manager := jobs.NewJobManager(purge)
//	if err := manager.StartAll(); err != nil {
//	    return err
//	}
//	defer manager.StopAll()
package jobs
