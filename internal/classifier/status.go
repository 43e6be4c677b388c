package classifier

import (
	"time"

	"intentd/pkg/types"
)

// Snapshot returns a read-only view of the classifier state.
func (c *Classifier) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := Snapshot{State: StateUnloaded, LastError: c.lastErr, Loads: c.loads}
	if c.cur != nil {
		s.State = StateLoaded
		s.ModelID = c.cur.ModelID
		s.Kind = c.cur.Kind
		s.Device = c.cur.Device
		s.LoadedAt = c.loadedAt
	}
	return s
}

// Status builds the status response for /status.
func (c *Classifier) Status() types.StatusResponse {
	s := c.Snapshot()
	resp := types.StatusResponse{
		State:          string(s.State),
		ModelID:        s.ModelID,
		Device:         string(s.Device),
		LastError:      s.LastError,
		LoadsTotal:     s.Loads,
		UptimeSeconds:  int64(time.Since(c.startTime).Seconds()),
		ServerTimeUnix: time.Now().Unix(),
	}
	if s.State == StateLoaded {
		resp.PipelineType = s.Kind.String()
		resp.LoadedAtUnix = s.LoadedAt.Unix()
	}
	return resp
}
