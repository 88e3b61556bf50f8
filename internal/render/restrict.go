package render

// busSpans returns every (bus, startIdx, finishIdx) span to draw: every
// span on every bus for the base map, or only the route's Bus items
// when restricted.
func (ctx *context) busSpans() []busSpan {
	if ctx.restrict != nil {
		return ctx.restrict.spans
	}
	spans := make([]busSpan, 0, len(ctx.cat.Buses))
	for _, name := range ctx.cat.SortedBusNames() {
		bus := ctx.cat.Buses[name]
		spans = append(spans, busSpan{busName: name, startIdx: 0, finishIdx: len(bus.Stops) - 1})
	}
	return spans
}

// stopNames returns the stops to draw points for: every stop for the
// base map, or only the stops covered by the route's bus spans when
// restricted.
func (ctx *context) stopNames() []string {
	if ctx.restrict == nil {
		return ctx.cat.SortedStopNames()
	}
	seen := make(map[string]struct{})
	var names []string
	for _, span := range ctx.restrict.spans {
		bus := ctx.cat.Buses[span.busName]
		for _, name := range bus.Stops[span.startIdx : span.finishIdx+1] {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	return names
}

// stopLabelNames returns the stops to draw labels for: every stop for
// the base map, or the route's first stop plus the final stop of every
// bus item when restricted.
func (ctx *context) stopLabelNames() []string {
	if ctx.restrict == nil {
		return ctx.cat.SortedStopNames()
	}
	var names []string
	if ctx.restrict.startStop != "" {
		names = append(names, ctx.restrict.startStop)
	}
	names = append(names, ctx.restrict.endStops...)
	return names
}

// stopWithinSpan reports whether stop appears within bus.Stops[s:f+1].
func stopWithinSpan(stops []string, span busSpan, stop string) bool {
	for i := span.startIdx; i <= span.finishIdx; i++ {
		if stops[i] == stop {
			return true
		}
	}
	return false
}
