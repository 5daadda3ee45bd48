package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/middleware"
	"github.com/BruksfildServices01/barberhub/internal/store"
)

// SnapshotHandler exports the whole entity graph and replays an exported
// graph into the store.
type SnapshotHandler struct {
	store *store.Store
	audit audit.Recorder
}

func NewSnapshotHandler(st *store.Store, rec audit.Recorder) *SnapshotHandler {
	return &SnapshotHandler{store: st, audit: rec}
}

func (h *SnapshotHandler) Export(c *gin.Context) {
	httpresp.OK(c, h.store.Snapshot())
}

type ImportResponse struct {
	Created map[string]int `json:"created"`
	IDs     store.Remap    `json:"ids"`
}

// Import answers with the new id of every imported record, keyed by entity
// and old id.
func (h *SnapshotHandler) Import(c *gin.Context) {
	var snap store.Snapshot
	if !bindJSON(c, &snap) {
		return
	}

	remap, err := h.store.Restore(snap)
	if err != nil {
		writeError(c, err)
		return
	}

	created := make(map[string]int, len(remap))
	for entity, ids := range remap {
		created[entity] = len(ids)
	}

	h.audit.Dispatch(audit.Event{
		RequestID: middleware.GetRequestID(c),
		Action:    "snapshot_import",
		Entity:    "snapshot",
		Metadata:  created,
	})

	httpresp.Created(c, ImportResponse{Created: created, IDs: remap})
}
