package store

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"labtrack/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfEdit           = errors.New("cannot edit own account")
	ErrSelfDelete         = errors.New("cannot delete own account")
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Store владеет всем изменяемым состоянием приложения: коллекцией
// оборудования, списком пользователей и журналом действий. Ничего не
// сохраняется между запусками — перезапуск процесса обнуляет данные.
// Читатели получают копии срезов, писатели меняют состояние целиком.
type Store struct {
	mu        sync.RWMutex
	equipment []models.Equipment
	users     []models.User
	activity  []ActivityEntry

	nextID atomic.Int64
}

// New создаёт пустое хранилище и заводит встроенные учётные записи.
func New() *Store {
	s := &Store{}
	s.seedDefaultUsers()
	return s
}

// NextID — монотонный счётчик идентификаторов. Общий для ручного
// добавления и импорта, поэтому коллизий между партиями не бывает.
func (s *Store) NextID() int64 {
	return s.nextID.Add(1)
}

// ---- оборудование ----

// Equipment возвращает копию текущей коллекции.
func (s *Store) Equipment() []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Equipment, len(s.equipment))
	copy(out, s.equipment)
	return out
}

// ReplaceEquipment — импорт целиком заменяет коллекцию, не сливает.
func (s *Store) ReplaceEquipment(items []models.Equipment) {
	next := make([]models.Equipment, len(items))
	copy(next, items)

	s.mu.Lock()
	s.equipment = next
	s.mu.Unlock()
}

func (s *Store) AddEquipment(e models.Equipment) models.Equipment {
	e.ID = s.NextID()

	s.mu.Lock()
	s.equipment = append(s.equipment, e)
	s.mu.Unlock()
	return e
}

func (s *Store) UpdateEquipment(e models.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.equipment {
		if s.equipment[i].ID == e.ID {
			s.equipment[i] = e
			return nil
		}
	}
	return ErrEquipmentNotFound
}

func (s *Store) EquipmentByID(id int64) (models.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.equipment {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Equipment{}, ErrEquipmentNotFound
}

func (s *Store) DeleteEquipment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.equipment {
		if s.equipment[i].ID == id {
			s.equipment = append(s.equipment[:i:i], s.equipment[i+1:]...)
			return nil
		}
	}
	return ErrEquipmentNotFound
}

// DeleteEquipmentMany удаляет записи пачкой и возвращает число удалённых.
func (s *Store) DeleteEquipmentMany(ids []int64) int {
	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.equipment[:0:0]
	for _, e := range s.equipment {
		if _, ok := drop[e.ID]; !ok {
			kept = append(kept, e)
		}
	}
	deleted := len(s.equipment) - len(kept)
	s.equipment = kept
	return deleted
}

// ---- пользователи ----

// Users возвращает копию списка учётных записей.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) UserByID(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// AddUser заводит учётную запись. Имя сравнивается с существующими точно,
// с учётом регистра.
func (s *Store) AddUser(username, password string, role models.UserRole) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return models.User{}, ErrUsernameTaken
		}
	}

	user := models.User{
		ID:           s.NextID(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	s.users = append(s.users, user)
	return user, nil
}

// UpdateUserRole меняет роль чужой учётной записи; свою — нельзя.
func (s *Store) UpdateUserRole(actorID, targetID int64, role models.UserRole) error {
	if actorID == targetID {
		return ErrSelfEdit
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == targetID {
			s.users[i].Role = role
			return nil
		}
	}
	return ErrUserNotFound
}

// DeleteUser удаляет чужую учётную запись; свою — нельзя.
func (s *Store) DeleteUser(actorID, targetID int64) error {
	if actorID == targetID {
		return ErrSelfDelete
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == targetID {
			s.users = append(s.users[:i:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

// Authenticate проверяет пару логин/пароль и при успехе ставит отметку
// последнего входа.
func (s *Store) Authenticate(username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(s.users[i].PasswordHash), []byte(password)) != nil {
			return models.User{}, ErrInvalidCredentials
		}
		now := time.Now().UTC()
		s.users[i].LastLogin = &now
		return s.users[i], nil
	}
	return models.User{}, ErrInvalidCredentials
}
