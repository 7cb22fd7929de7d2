package server

import (
	"context"
	"errors"
	"io"
	"reflect"
	"sync"

	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/arzan03/aircnc-server/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStorageDown = errors.New("storage down")

// memStore is an in-memory stand-in for the three collections.
type memStore struct {
	mu       sync.Mutex
	users    map[string]models.Document
	rooms    []models.Document
	bookings []models.Document
	failing  bool
	queries  int
}

func newMemStore() *memStore {
	return &memStore{users: map[string]models.Document{}}
}

func (m *memStore) begin() error {
	m.queries++
	if m.failing {
		return errStorageDown
	}
	return nil
}

func copyDoc(doc models.Document) models.Document {
	out := models.Document{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, services.ErrInvalidID
	}
	return oid, nil
}

func filter(docs []models.Document, keep func(models.Document) bool) []models.Document {
	out := []models.Document{}
	for _, d := range docs {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func indexOf(docs []models.Document, oid primitive.ObjectID) int {
	for i, d := range docs {
		if d[models.FieldID] == oid {
			return i
		}
	}
	return -1
}

func insert(docs *[]models.Document, doc models.Document) models.InsertResult {
	d := copyDoc(doc)
	delete(d, models.FieldID)
	oid := primitive.NewObjectID()
	d[models.FieldID] = oid
	*docs = append(*docs, d)
	return models.InsertResult{Acknowledged: true, InsertedID: oid}
}

func remove(docs *[]models.Document, oid primitive.ObjectID) models.DeleteResult {
	i := indexOf(*docs, oid)
	if i < 0 {
		return models.DeleteResult{Acknowledged: true}
	}
	*docs = append((*docs)[:i], (*docs)[i+1:]...)
	return models.DeleteResult{Acknowledged: true, DeletedCount: 1}
}

type memUsers struct{ *memStore }

func (m memUsers) Upsert(_ context.Context, email string, user models.Document) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return models.UpdateResult{}, err
	}

	existing, ok := m.users[email]
	if !ok {
		oid := primitive.NewObjectID()
		doc := copyDoc(user)
		doc[models.FieldID] = oid
		doc[models.FieldEmail] = email
		m.users[email] = doc
		return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
	}

	modified := int64(0)
	for k, v := range user {
		if k == models.FieldID {
			continue
		}
		if !reflect.DeepEqual(existing[k], v) {
			modified = 1
		}
		existing[k] = v
	}
	existing[models.FieldEmail] = email
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return m.users[email], nil
}

type memRooms struct{ *memStore }

func (m memRooms) Create(_ context.Context, room models.Document) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return models.InsertResult{}, err
	}
	return insert(&m.rooms, room), nil
}

func (m memRooms) GetByID(_ context.Context, id string) (models.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	if i := indexOf(m.rooms, oid); i >= 0 {
		return m.rooms[i], nil
	}
	return nil, nil
}

func (m memRooms) ListByHost(_ context.Context, email string) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return filter(m.rooms, func(d models.Document) bool {
		return models.StringAt(d, models.FieldHost, models.FieldEmail) == email
	}), nil
}

func (m memRooms) List(context.Context) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return filter(m.rooms, func(models.Document) bool { return true }), nil
}

func (m memRooms) Delete(_ context.Context, id string) (models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return models.DeleteResult{}, err
	}
	return remove(&m.rooms, oid), nil
}

func (m memRooms) SetBooked(_ context.Context, id string, booked bool) (models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return models.UpdateResult{}, err
	}

	i := indexOf(m.rooms, oid)
	if i < 0 {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	if m.rooms[i][models.FieldBooked] != booked {
		modified = 1
	}
	m.rooms[i][models.FieldBooked] = booked
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

type memBookings struct{ *memStore }

func (m memBookings) Create(_ context.Context, booking models.Document) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return models.InsertResult{}, err
	}
	return insert(&m.bookings, booking), nil
}

func (m memBookings) ListByGuest(_ context.Context, email string) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return filter(m.bookings, func(d models.Document) bool {
		return models.StringAt(d, models.FieldGuest, models.FieldEmail) == email
	}), nil
}

func (m memBookings) ListByHost(_ context.Context, email string) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	return filter(m.bookings, func(d models.Document) bool {
		return models.StringAt(d, models.FieldHost) == email ||
			models.StringAt(d, models.FieldHost, models.FieldEmail) == email
	}), nil
}

func (m memBookings) Delete(_ context.Context, id string) (models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return models.DeleteResult{}, err
	}
	return remove(&m.bookings, oid), nil
}

// memObjects records uploaded objects.
type memObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memObjects) Put(_ context.Context, key, _ string, r io.Reader, _ int64) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = b
	return "http://images.local/room-images/" + key, nil
}
