package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"runnerspro/internal/admin"
	"runnerspro/internal/metrics"
)

const syncHistoryLimit = 50

// GET /api/admin/users?q=&sort=&dir=
func (s *Server) listUsers(c *gin.Context) {
	state := admin.DefaultSort()
	if v := c.Query("sort"); v != "" {
		field, ok := admin.ParseSortField(v)
		if !ok {
			s.respondError(c, NewError(http.StatusBadRequest, "invalid_sort", fmt.Errorf("unknown sort field %q", v)))
			return
		}
		state = admin.SortState{Field: field, Direction: admin.Asc}
	}
	switch dir := admin.SortDirection(c.Query("dir")); dir {
	case "":
	case admin.Asc, admin.Desc:
		state.Direction = dir
	default:
		s.respondError(c, NewError(http.StatusBadRequest, "invalid_sort", fmt.Errorf("unknown sort direction %q", dir)))
		return
	}

	users := admin.Query(admin.DemoUsers(), c.Query("q"), state)
	c.JSON(http.StatusOK, gin.H{"users": users, "sort": state})
}

// GET /api/admin/sync
func (s *Server) listSyncs(c *gin.Context) {
	events, err := s.syncs.Recent(c.Request.Context(), syncHistoryLimit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if events == nil {
		events = []admin.SyncEvent{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "counts": admin.CountSyncStatus(events)})
}

// GET /api/admin/system
func (s *Server) systemHealth(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.GetSysHealth(s.dataDir))
}
