package types

import (
	"time"

	"github.com/bytearena/sightline/common/scene"
	commontypes "github.com/bytearena/sightline/common/types"
	"github.com/bytearena/sightline/common/visibility2d"
)

// Query is a visibility computation kept around so that its diagram can be
// fetched later.
type Query struct {
	ID        string
	Scene     *scene.Scene
	Result    visibility2d.Result
	CreatedAt time.Time
}

type VisibilityResponse struct {
	ID        string             `json:"id"`
	Viewpoint visibility2d.Point `json:"viewpoint"`
	visibility2d.Result
}

func (q *Query) Response() VisibilityResponse {
	return VisibilityResponse{
		ID:        q.ID,
		Viewpoint: q.Scene.Viewpoint,
		Result:    q.Result,
	}
}

type QueryMap struct {
	*commontypes.SyncMap
}

func NewQueryMap(capacity int) *QueryMap {
	return &QueryMap{
		commontypes.NewBoundedSyncMap(capacity),
	}
}

func (qmap *QueryMap) Get(id string) *Query {
	if res, ok := (qmap.GetGeneric(id)).(*Query); ok {
		return res
	}

	return nil
}

func (qmap *QueryMap) Add(query *Query) {
	qmap.Set(query.ID, query)
}

// Recent returns the stored queries, newest first.
func (qmap *QueryMap) Recent() []*Query {
	items := qmap.ToArrayGeneric()
	res := make([]*Query, 0, len(items))

	for i := len(items) - 1; i >= 0; i-- {
		if query, ok := items[i].(*Query); ok {
			res = append(res, query)
		}
	}

	return res
}
