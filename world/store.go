package world

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swarm/components"
)

var (
	// ErrNotFound is returned when no live entity has the requested id.
	ErrNotFound = errors.New("entity not found")
	// ErrBaseExists is returned when a second base is spawned.
	ErrBaseExists = errors.New("base already placed")
)

// Entry is a read-only snapshot of one entity.
type Entry struct {
	ID       uint32
	Kind     components.EntityKind
	Position components.Position
	Resource components.ResourceKind // valid when Kind == KindResource
	Robot    components.Robot        // valid when Kind == KindRobot
}

// ResourceRef identifies a resource for removal.
type ResourceRef struct {
	ID       uint32
	Kind     components.ResourceKind
	Position components.Position
}

// RobotRef is a snapshot of a robot and its current cell.
type RobotRef struct {
	EntityID uint32
	Robot    components.Robot
	Position components.Position
}

// Store owns every simulated entity. Obstacles, resources and the base are
// indexed by cell; robots move every tick and are found by query instead.
type Store struct {
	world *ecs.World
	grid  *GridMap

	nextID uint32
	byID   map[uint32]ecs.Entity
	cells  *CellIndex

	base    ecs.Entity
	hasBase bool

	// Entity mappers, one per variant
	obstacleMapper *ecs.Map3[components.Position, components.Identity, components.Obstacle]
	resourceMapper *ecs.Map3[components.Position, components.Identity, components.Resource]
	robotMapper    *ecs.Map3[components.Position, components.Identity, components.Robot]
	baseMapper     *ecs.Map2[components.Position, components.Identity]

	// Individual component mappers for lookups
	posMap   *ecs.Map[components.Position]
	identMap *ecs.Map[components.Identity]
	resMap   *ecs.Map[components.Resource]
	robotMap *ecs.Map[components.Robot]

	entityFilter   *ecs.Filter2[components.Position, components.Identity]
	resourceFilter *ecs.Filter2[components.Position, components.Resource]
	robotFilter    *ecs.Filter3[components.Position, components.Identity, components.Robot]
}

// NewStore creates an empty store for the given grid.
func NewStore(grid *GridMap) *Store {
	w := ecs.NewWorld()

	return &Store{
		world:  w,
		grid:   grid,
		nextID: 1,
		byID:   make(map[uint32]ecs.Entity),
		cells:  NewCellIndex(grid),

		obstacleMapper: ecs.NewMap3[components.Position, components.Identity, components.Obstacle](w),
		resourceMapper: ecs.NewMap3[components.Position, components.Identity, components.Resource](w),
		robotMapper:    ecs.NewMap3[components.Position, components.Identity, components.Robot](w),
		baseMapper:     ecs.NewMap2[components.Position, components.Identity](w),

		posMap:   ecs.NewMap[components.Position](w),
		identMap: ecs.NewMap[components.Identity](w),
		resMap:   ecs.NewMap[components.Resource](w),
		robotMap: ecs.NewMap[components.Robot](w),

		entityFilter:   ecs.NewFilter2[components.Position, components.Identity](w),
		resourceFilter: ecs.NewFilter2[components.Position, components.Resource](w),
		robotFilter:    ecs.NewFilter3[components.Position, components.Identity, components.Robot](w),
	}
}

// Grid returns the grid the store was created for.
func (s *Store) Grid() *GridMap { return s.grid }

// allocID hands out the next identity. Ids are never reused.
func (s *Store) allocID() uint32 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) checkBounds(p components.Position) error {
	if !s.grid.Contains(p) {
		return fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, p, s.grid.Width(), s.grid.Height())
	}
	return nil
}

// SpawnObstacle places an obstacle at p and returns its id.
func (s *Store) SpawnObstacle(p components.Position) (uint32, error) {
	if err := s.checkBounds(p); err != nil {
		return 0, err
	}
	id := s.allocID()
	ident := components.Identity{ID: id, Kind: components.KindObstacle}
	obs := components.Obstacle{ID: id}
	e := s.obstacleMapper.NewEntity(&p, &ident, &obs)
	s.byID[id] = e
	s.cells.Insert(e, p)
	return id, nil
}

// SpawnResource places a resource of the given kind at p and returns its id.
func (s *Store) SpawnResource(kind components.ResourceKind, p components.Position) (uint32, error) {
	if err := s.checkBounds(p); err != nil {
		return 0, err
	}
	id := s.allocID()
	ident := components.Identity{ID: id, Kind: components.KindResource}
	res := components.Resource{Kind: kind}
	e := s.resourceMapper.NewEntity(&p, &ident, &res)
	s.byID[id] = e
	s.cells.Insert(e, p)
	return id, nil
}

// SpawnBase places the singleton base at p.
func (s *Store) SpawnBase(p components.Position) (uint32, error) {
	if s.hasBase {
		return 0, ErrBaseExists
	}
	if err := s.checkBounds(p); err != nil {
		return 0, err
	}
	id := s.allocID()
	ident := components.Identity{ID: id, Kind: components.KindBase}
	e := s.baseMapper.NewEntity(&p, &ident)
	s.byID[id] = e
	s.cells.Insert(e, p)
	s.base = e
	s.hasBase = true
	return id, nil
}

// SpawnRobot places a robot at p and returns its entity id.
func (s *Store) SpawnRobot(r components.Robot, p components.Position) (uint32, error) {
	if err := s.checkBounds(p); err != nil {
		return 0, err
	}
	id := s.allocID()
	ident := components.Identity{ID: id, Kind: components.KindRobot}
	e := s.robotMapper.NewEntity(&p, &ident, &r)
	s.byID[id] = e
	return id, nil
}

// Remove destroys the entity with the given id.
// Must not be called while a store query is iterating.
func (s *Store) Remove(id uint32) error {
	e, ok := s.byID[id]
	if !ok || !s.world.Alive(e) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	ident := s.identMap.Get(e)
	if ident.Kind != components.KindRobot {
		s.cells.Remove(e, *s.posMap.Get(e))
	}
	if s.hasBase && e == s.base {
		s.hasBase = false
	}

	delete(s.byID, id)
	s.world.RemoveEntity(e)
	return nil
}

// Has reports whether an entity with the given id is alive.
func (s *Store) Has(id uint32) bool {
	e, ok := s.byID[id]
	return ok && s.world.Alive(e)
}

// Get returns a snapshot of the entity with the given id.
func (s *Store) Get(id uint32) (Entry, bool) {
	e, ok := s.byID[id]
	if !ok || !s.world.Alive(e) {
		return Entry{}, false
	}
	return s.entry(e), true
}

func (s *Store) entry(e ecs.Entity) Entry {
	ident := s.identMap.Get(e)
	out := Entry{
		ID:       ident.ID,
		Kind:     ident.Kind,
		Position: *s.posMap.Get(e),
	}
	switch ident.Kind {
	case components.KindResource:
		out.Resource = s.resMap.Get(e).Kind
	case components.KindRobot:
		out.Robot = *s.robotMap.Get(e)
	}
	return out
}

// At returns every entity on cell p: indexed entities in spawn order, then
// robots in ascending robot id.
func (s *Store) At(p components.Position) []Entry {
	var out []Entry
	for _, e := range s.cells.At(p) {
		out = append(out, s.entry(e))
	}
	for _, r := range s.Robots() {
		if r.Position == p {
			out = append(out, Entry{
				ID:       r.EntityID,
				Kind:     components.KindRobot,
				Position: r.Position,
				Robot:    r.Robot,
			})
		}
	}
	return out
}

// ResourcesAt returns the resources on cell p in spawn order.
func (s *Store) ResourcesAt(p components.Position) []ResourceRef {
	var out []ResourceRef
	for _, e := range s.cells.At(p) {
		ident := s.identMap.Get(e)
		if ident.Kind != components.KindResource {
			continue
		}
		out = append(out, ResourceRef{
			ID:       ident.ID,
			Kind:     s.resMap.Get(e).Kind,
			Position: p,
		})
	}
	return out
}

// Base returns the base position, if one was placed.
func (s *Store) Base() (components.Position, bool) {
	if !s.hasBase || !s.world.Alive(s.base) {
		return components.Position{}, false
	}
	return *s.posMap.Get(s.base), true
}

// Robots returns a snapshot of all robots sorted by robot id.
func (s *Store) Robots() []RobotRef {
	var out []RobotRef
	query := s.robotFilter.Query()
	for query.Next() {
		pos, ident, robot := query.Get()
		out = append(out, RobotRef{EntityID: ident.ID, Robot: *robot, Position: *pos})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Robot.ID < out[j].Robot.ID
	})
	return out
}

// UpdateRobots calls fn for every robot with a mutable position.
// fn must not add or remove entities.
func (s *Store) UpdateRobots(fn func(r *components.Robot, pos *components.Position)) {
	query := s.robotFilter.Query()
	for query.Next() {
		pos, _, robot := query.Get()
		fn(robot, pos)
	}
}

// SetRobotPosition moves the robot with the given entity id to p.
func (s *Store) SetRobotPosition(id uint32, p components.Position) error {
	if err := s.checkBounds(p); err != nil {
		return err
	}
	e, ok := s.byID[id]
	if !ok || !s.world.Alive(e) || !s.robotMap.Has(e) {
		return fmt.Errorf("%w: robot %d", ErrNotFound, id)
	}
	*s.posMap.Get(e) = p
	return nil
}

// Each calls fn with a snapshot of every entity in unspecified order.
func (s *Store) Each(fn func(Entry)) {
	var entries []Entry
	query := s.entityFilter.Query()
	for query.Next() {
		entries = append(entries, s.entry(query.Entity()))
	}
	for _, e := range entries {
		fn(e)
	}
}

// Count returns the number of live entities of the given kind.
func (s *Store) Count(kind components.EntityKind) int {
	n := 0
	query := s.entityFilter.Query()
	for query.Next() {
		_, ident := query.Get()
		if ident.Kind == kind {
			n++
		}
	}
	return n
}

// CountResources returns the number of live resources of each kind.
func (s *Store) CountResources() map[components.ResourceKind]int {
	counts := make(map[components.ResourceKind]int, len(components.ResourceKinds))
	query := s.resourceFilter.Query()
	for query.Next() {
		_, res := query.Get()
		counts[res.Kind]++
	}
	return counts
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.byID)
}
