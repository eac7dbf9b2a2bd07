package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/wastezero/wastezero-api/schema"
)

var (
	ErrAccountTaken    = fmt.Errorf("email or username has already been taken")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// AccountProfileUpdate carries the editable profile fields. Nil
// pointers leave the stored value untouched.
type AccountProfileUpdate struct {
	Name     *string
	Email    *string
	Location *string
	Bio      *string
	Phone    *string
	Skills   []string
}

// CreateAccount registers a new account and seeds its stats profile.
func (s *WasteZeroStore) CreateAccount(name, email, username, passwordDigest string, role schema.Role) (*schema.Account, error) {
	a := schema.Account{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		Username:       username,
		PasswordDigest: passwordDigest,
		Role:           role,
		Skills:         pq.StringArray{},
		Enabled:        true,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	// Counters start at zero; the $inc upserts would recreate the
	// profile anyway, so a failure here is not fatal.
	if err := s.mongo.CreateProfile(a.ID.String()); err != nil {
		log.WithField("prefix", "store").WithError(err).Error("seed stats profile")
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account id
func (s *WasteZeroStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *WasteZeroStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAccountProfile applies the provided profile fields to an
// account.
func (s *WasteZeroStore) UpdateAccountProfile(id string, update AccountProfileUpdate) (*schema.Account, error) {
	a, err := s.GetAccount(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.Email != nil {
		a.Email = *update.Email
	}
	if update.Location != nil {
		a.Location = *update.Location
	}
	if update.Bio != nil {
		a.Bio = *update.Bio
	}
	if update.Phone != nil {
		a.Phone = *update.Phone
	}
	if update.Skills != nil {
		a.Skills = pq.StringArray(update.Skills)
	}

	if err := s.ormDB.Save(a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return a, nil
}

func (s *WasteZeroStore) UpdateAccountPassword(id, passwordDigest string) error {
	result := s.ormDB.Model(schema.Account{}).
		Where("id = ?", id).
		Update("password_digest", passwordDigest)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ToggleAccountSuspension flips the suspended flag of an account and
// audits the change.
func (s *WasteZeroStore) ToggleAccountSuspension(adminID, id string) (*schema.Account, error) {
	a, err := s.GetAccount(id)
	if err != nil {
		return nil, err
	}

	a.Suspended = !a.Suspended
	if err := s.ormDB.Save(a).Error; err != nil {
		return nil, err
	}

	action := schema.AuditUserActivated
	verb := "activated"
	if a.Suspended {
		action = schema.AuditUserSuspended
		verb = "suspended"
	}
	s.recordAudit(action, a.ID.String(), adminID, fmt.Sprintf("%s %s by admin", a.Name, verb))

	return a, nil
}

// DeleteAccount removes an account from our system permanently
func (s *WasteZeroStore) DeleteAccount(adminID, id string) error {
	a, err := s.GetAccount(id)
	if err != nil {
		return err
	}

	if err := s.ormDB.Delete(schema.Account{}, "id = ?", id).Error; err != nil {
		return err
	}

	s.recordAudit(schema.AuditUserDeleted, "", adminID, fmt.Sprintf("%s deleted by admin", a.Name))
	return nil
}

func (s *WasteZeroStore) ListVolunteers() ([]schema.Account, error) {
	accounts := []schema.Account{}
	if err := s.ormDB.
		Where("role = ?", schema.RoleVolunteer).
		Order("created_at desc").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListMembers returns non-admin accounts, newest first, with the total
// count for pagination.
func (s *WasteZeroStore) ListMembers(page, limit int64) ([]schema.Account, int64, error) {
	accounts := []schema.Account{}
	query := s.ormDB.Model(schema.Account{}).Where("role <> ?", schema.RoleAdmin)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&accounts).Error; err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

func (s *WasteZeroStore) ListAllAccounts() ([]schema.Account, error) {
	accounts := []schema.Account{}
	if err := s.ormDB.Order("created_at desc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *WasteZeroStore) countAccountsByRole(role schema.Role) (int64, error) {
	var count int64
	err := s.ormDB.Model(schema.Account{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
