package mongodb

import (
	"time"

	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
)

// Collection names
const (
	collUsers         = "users"
	collGroups        = "groups"
	collProjects      = "projects"
	collHosts         = "host"
	collDevices       = "device"
	collNotifications = "notifications"
	collTokens        = "user_tokens"
	collOTPs          = "user_otps"
)

// Documents store UUIDs as their canonical string form, including _id.

type userDocument struct {
	ID              string    `bson:"_id"`
	FirstName       string    `bson:"firstName"`
	LastName        string    `bson:"lastName"`
	Email           string    `bson:"email"`
	Phone           string    `bson:"phone"`
	Username        string    `bson:"username"`
	PasswordHash    string    `bson:"passwordHash"`
	Role            string    `bson:"role"`
	GroupIDs        []string  `bson:"groupIds"`
	ProjectIDs      []string  `bson:"projectIds"`
	BusinessPurpose string    `bson:"businessPurpose"`
	IsActive        bool      `bson:"isActive"`
	IsApproved      bool      `bson:"isApproved"`
	Status          string    `bson:"status"`
	Reason          string    `bson:"reason"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

type groupDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	CreatedBy   string    `bson:"createdBy"`
	GroupAdmin  *string   `bson:"groupAdmin"`
	Members     []string  `bson:"members"`
	Projects    []string  `bson:"projects"`
	IsActive    bool      `bson:"isActive"`
	Reason      string    `bson:"reason"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type projectDocument struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Description   string    `bson:"description"`
	Status        string    `bson:"status"`
	GroupID       *string   `bson:"groupId"`
	AssignedUsers []string  `bson:"assignedUsers"`
	CreatedBy     string    `bson:"createdBy"`
	IsActive      bool      `bson:"isActive"`
	Reason        string    `bson:"reason"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

type hostDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	IPAddress   string    `bson:"ipAddress"`
	Location    string    `bson:"location"`
	Latitude    *float64  `bson:"latitude"`
	Longitude   *float64  `bson:"longitude"`
	GroupID     *string   `bson:"groupId"`
	ProjectID   *string   `bson:"projectId"`
	IsActive    bool      `bson:"isActive"`
	Reason      string    `bson:"reason"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type deviceDocument struct {
	ID                   string     `bson:"_id"`
	UDID                 string     `bson:"udid"`
	LastUpdate           *time.Time `bson:"last_update"`
	State                string     `bson:"state"`
	CPU                  string     `bson:"cpu"`
	Manufacturer         string     `bson:"manufacturer"`
	Model                string     `bson:"model"`
	OSVersion            string     `bson:"os_version"`
	SDKVersion           string     `bson:"sdk_version"`
	SecurityID           *int       `bson:"security_id"`
	RegisteredTo         *string    `bson:"registered_to"`
	Status               string     `bson:"status"`
	RequestedBy          *string    `bson:"requested_by"`
	RequestedAt          *time.Time `bson:"requested_at"`
	ApprovedOrRejectedAt *time.Time `bson:"approved_or_rejected_at"`
	HostIP               string     `bson:"host_ip"`
	CreatedAt            time.Time  `bson:"created_at"`
	UpdatedAt            time.Time  `bson:"updated_at"`
}

type notificationDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Message   string    `bson:"message"`
	IsRead    bool      `bson:"is_read"`
	CreatedAt time.Time `bson:"created_at"`
}

type tokenDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Token     string    `bson:"token"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

type otpDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	OTP       string    `bson:"otp"`
	ExpiresAt time.Time `bson:"expiration_time"`
	CreatedAt time.Time `bson:"created_at"`
}

// --- ID helpers ---

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func idString(id uuid.UUID) string {
	return id.String()
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

// parseIDs drops malformed entries instead of failing the whole read.
func parseIDs(values []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		if id, err := uuid.Parse(v); err == nil {
			out = append(out, id)
		}
	}

	return out
}

func parseID(value string) uuid.UUID {
	id, _ := uuid.Parse(value)

	return id
}

func optionalIDString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()

	return &s
}

func optionalID(value *string) *uuid.UUID {
	if value == nil {
		return nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil
	}

	return &id
}

// utcNow is the document clock; mongo stores millisecond precision.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// --- Mapper Functions ---

func fromUserDomain(u *entity.User) *userDocument {
	return &userDocument{
		ID:              idString(u.ID),
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Phone:           u.Phone,
		Username:        u.Username,
		PasswordHash:    u.PasswordHash,
		Role:            string(u.Role),
		GroupIDs:        idStrings(u.GroupIDs),
		ProjectIDs:      idStrings(u.ProjectIDs),
		BusinessPurpose: u.BusinessPurpose,
		IsActive:        u.IsActive,
		IsApproved:      u.IsApproved,
		Status:          string(u.Status),
		Reason:          u.Reason,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (d *userDocument) toDomain() *entity.User {
	return &entity.User{
		ID:              parseID(d.ID),
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		Phone:           d.Phone,
		Username:        d.Username,
		PasswordHash:    d.PasswordHash,
		Role:            entity.Role(d.Role),
		GroupIDs:        parseIDs(d.GroupIDs),
		ProjectIDs:      parseIDs(d.ProjectIDs),
		BusinessPurpose: d.BusinessPurpose,
		IsActive:        d.IsActive,
		IsApproved:      d.IsApproved,
		Status:          entity.ApprovalStatus(d.Status),
		Reason:          d.Reason,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func fromGroupDomain(g *entity.Group) *groupDocument {
	return &groupDocument{
		ID:          idString(g.ID),
		Name:        g.Name,
		Description: g.Description,
		CreatedBy:   idString(g.CreatedBy),
		GroupAdmin:  optionalIDString(g.GroupAdmin),
		Members:     idStrings(g.MemberIDs),
		Projects:    idStrings(g.ProjectIDs),
		IsActive:    g.IsActive,
		Reason:      g.Reason,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (d *groupDocument) toDomain() *entity.Group {
	return &entity.Group{
		ID:          parseID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		CreatedBy:   parseID(d.CreatedBy),
		GroupAdmin:  optionalID(d.GroupAdmin),
		MemberIDs:   parseIDs(d.Members),
		ProjectIDs:  parseIDs(d.Projects),
		IsActive:    d.IsActive,
		Reason:      d.Reason,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromProjectDomain(p *entity.Project) *projectDocument {
	return &projectDocument{
		ID:            idString(p.ID),
		Name:          p.Name,
		Description:   p.Description,
		Status:        string(p.Status),
		GroupID:       optionalIDString(p.GroupID),
		AssignedUsers: idStrings(p.AssignedUserIDs),
		CreatedBy:     idString(p.CreatedBy),
		IsActive:      p.IsActive,
		Reason:        p.Reason,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (d *projectDocument) toDomain() *entity.Project {
	return &entity.Project{
		ID:              parseID(d.ID),
		Name:            d.Name,
		Description:     d.Description,
		Status:          entity.ProjectStatus(d.Status),
		GroupID:         optionalID(d.GroupID),
		AssignedUserIDs: parseIDs(d.AssignedUsers),
		CreatedBy:       parseID(d.CreatedBy),
		IsActive:        d.IsActive,
		Reason:          d.Reason,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func fromHostDomain(h *entity.Host) *hostDocument {
	return &hostDocument{
		ID:          idString(h.ID),
		Name:        h.Name,
		Description: h.Description,
		IPAddress:   h.IPAddress,
		Location:    h.Location,
		Latitude:    h.Latitude,
		Longitude:   h.Longitude,
		GroupID:     optionalIDString(h.GroupID),
		ProjectID:   optionalIDString(h.ProjectID),
		IsActive:    h.IsActive,
		Reason:      h.Reason,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func (d *hostDocument) toDomain() *entity.Host {
	return &entity.Host{
		ID:          parseID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		IPAddress:   d.IPAddress,
		Location:    d.Location,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		GroupID:     optionalID(d.GroupID),
		ProjectID:   optionalID(d.ProjectID),
		IsActive:    d.IsActive,
		Reason:      d.Reason,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromDeviceDomain(dev *entity.Device) *deviceDocument {
	return &deviceDocument{
		ID:                   idString(dev.ID),
		UDID:                 dev.UDID,
		LastUpdate:           dev.LastUpdate,
		State:                dev.State,
		CPU:                  dev.CPU,
		Manufacturer:         dev.Manufacturer,
		Model:                dev.Model,
		OSVersion:            dev.OSVersion,
		SDKVersion:           dev.SDKVersion,
		SecurityID:           dev.SecurityID,
		RegisteredTo:         optionalIDString(dev.RegisteredTo),
		Status:               string(dev.Status),
		RequestedBy:          optionalIDString(dev.RequestedBy),
		RequestedAt:          dev.RequestedAt,
		ApprovedOrRejectedAt: dev.ApprovedOrRejectedAt,
		HostIP:               dev.HostIP,
		CreatedAt:            dev.CreatedAt,
		UpdatedAt:            dev.UpdatedAt,
	}
}

func (d *deviceDocument) toDomain() *entity.Device {
	return &entity.Device{
		ID:                   parseID(d.ID),
		UDID:                 d.UDID,
		LastUpdate:           d.LastUpdate,
		State:                d.State,
		CPU:                  d.CPU,
		Manufacturer:         d.Manufacturer,
		Model:                d.Model,
		OSVersion:            d.OSVersion,
		SDKVersion:           d.SDKVersion,
		SecurityID:           d.SecurityID,
		RegisteredTo:         optionalID(d.RegisteredTo),
		Status:               entity.DeviceStatus(d.Status),
		RequestedBy:          optionalID(d.RequestedBy),
		RequestedAt:          d.RequestedAt,
		ApprovedOrRejectedAt: d.ApprovedOrRejectedAt,
		HostIP:               d.HostIP,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}
