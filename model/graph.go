package model

// StreetNetwork is the minimal graph the search engine walks: vertices
// plus the street edges leaving each of them. Building, mutating and
// persisting the full network is the graph loader's job (out of scope
// per spec.md §1); this type only holds what the core and the demo
// search engine need to read.
type StreetNetwork struct {
	Vertices  []Vertex
	Edges     []*StreetEdge
	outgoing  [][]int32 // vertex -> edge indices leaving it
	HomeZone  string    // IANA timezone name, the graph's "home timezone" (spec.md §4.5)
}

func NewStreetNetwork(homeZone string) *StreetNetwork {
	return &StreetNetwork{HomeZone: homeZone}
}

func (self *StreetNetwork) AddVertex(v Vertex) int32 {
	id := int32(len(self.Vertices))
	v.ID = id
	self.Vertices = append(self.Vertices, v)
	self.outgoing = append(self.outgoing, nil)
	return id
}

func (self *StreetNetwork) AddEdge(edge *StreetEdge) int32 {
	id := int32(len(self.Edges))
	edge.ID = id
	self.Edges = append(self.Edges, edge)
	self.outgoing[edge.FromVertex] = append(self.outgoing[edge.FromVertex], id)
	return id
}

func (self *StreetNetwork) OutgoingEdges(vertex int32) []int32 {
	return self.outgoing[vertex]
}

func (self *StreetNetwork) Vertex(id int32) *Vertex {
	return &self.Vertices[id]
}

func (self *StreetNetwork) Edge(id int32) *StreetEdge {
	return self.Edges[id]
}
