package visibility2d

import (
	"sort"
)

// eventCompare orders sweep events: by angle, then enter before exit, then
// nearer enters first and farther exits first, then by segment index.
func eventCompare(eventA, eventB SweepEvent) int {

	if eventA.Angle > eventB.Angle {
		return 1
	}

	if eventA.Angle < eventB.Angle {
		return -1
	}

	if eventA.Kind != eventB.Kind {
		if eventA.Kind == Enter {
			return -1
		}
		return 1
	}

	if eventA.Distance != eventB.Distance {
		nearerFirst := eventA.Distance < eventB.Distance
		if eventA.Kind == Exit {
			nearerFirst = !nearerFirst
		}

		if nearerFirst {
			return -1
		}
		return 1
	}

	if eventA.Segment < eventB.Segment {
		return -1
	}

	if eventA.Segment > eventB.Segment {
		return 1
	}

	return 0
}

type ByEvent []SweepEvent

func (coll ByEvent) Len() int      { return len(coll) }
func (coll ByEvent) Swap(i, j int) { coll[i], coll[j] = coll[j], coll[i] }
func (coll ByEvent) Less(i, j int) bool {
	return eventCompare(coll[i], coll[j]) < 0
}

// BuildEvents projects every segment and returns the sorted enter/exit
// events, two per segment, along with the interval of each segment.
func BuildEvents(viewpoint Point, segments []Segment) ([]SweepEvent, []Interval, error) {
	intervals := make([]Interval, len(segments))
	events := make([]SweepEvent, 0, 2*len(segments))

	for index, segment := range segments {
		interval, err := projectSegment(viewpoint, segment, index)
		if err != nil {
			return nil, nil, err
		}

		intervals[index] = interval
		events = append(events,
			SweepEvent{Angle: interval.Enter.Angle, Distance: interval.Enter.Distance, Segment: index, Kind: Enter},
			SweepEvent{Angle: interval.Exit.Angle, Distance: interval.Exit.Distance, Segment: index, Kind: Exit},
		)
	}

	sort.Sort(ByEvent(events))

	return events, intervals, nil
}
