package scheduler

// GetUnitStatusMap returns a copy of the status of every unit of the last run.
// This is exported for testing purposes only.
func (s *Scheduler) GetUnitStatusMap() map[string]UnitStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statusMap := make(map[string]UnitStatus, len(s.unitStatus))
	for k, v := range s.unitStatus {
		statusMap[k] = v
	}
	return statusMap
}
