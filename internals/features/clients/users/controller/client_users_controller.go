package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	clientsModel "apexdrive_backend/internals/features/clients/main/model"
	"apexdrive_backend/internals/features/clients/users/dto"
	"apexdrive_backend/internals/features/clients/users/model"
	"apexdrive_backend/internals/features/clients/users/service"
	helper "apexdrive_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClientUserController struct {
	DB *gorm.DB
}

func NewClientUserController(db *gorm.DB) *ClientUserController {
	return &ClientUserController{DB: db}
}

var validate = validator.New()

/* ================= Handlers ================= */

// POST /admin/users — attach an existing account to the caller's client.
func (ctrl *ClientUserController) AddUser(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AddClientUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// email lookup against existing accounts
	var account model.AccountModel
	if err := ctrl.DB.First(&account, "lower(account_email) = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No account exists for this email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up account")
	}

	// duplicate membership rejection
	var cnt int64
	if err := ctrl.DB.Model(&model.ClientUserModel{}).
		Where("client_user_client_id = ? AND client_user_user_id = ?", clientID, account.AccountID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check membership")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "This account is already a member of the client")
	}

	first, last := splitName(account.AccountName)
	cu := &model.ClientUserModel{
		ClientUserClientID:  clientID,
		ClientUserUserID:    account.AccountID,
		ClientUserEmail:     account.AccountEmail,
		ClientUserFirstName: first,
		ClientUserLastName:  last,
		ClientUserRole:      req.Role,
		ClientUserStatus:    "pending",
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Create(cu).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add user")
	}

	var groupIDs, teamIDs []uuid.UUID
	if req.GroupID != nil {
		if err := ctrl.assertGroupInClient(tx, clientID, *req.GroupID); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Create(&model.UserGroupModel{
			UserGroupClientUserID: cu.ClientUserID,
			UserGroupGroupID:      *req.GroupID,
		}).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign group")
		}
		groupIDs = []uuid.UUID{*req.GroupID}

		// team assignment is only meaningful inside the selected group
		teamGroup, err := ctrl.teamGroupMap(tx, clientID)
		if err != nil {
			tx.Rollback()
			return err
		}
		teamIDs = service.FilterTeamSelection(groupIDs, service.Dedupe(req.TeamIDs), teamGroup)
		for _, teamID := range teamIDs {
			if err := tx.Create(&model.UserTeamModel{
				UserTeamClientUserID: cu.ClientUserID,
				UserTeamTeamID:       teamID,
			}).Error; err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign team")
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "User added to client", dto.NewClientUserResponse(cu, groupIDs, teamIDs))
}

// GET /admin/users
func (ctrl *ClientUserController) ListUsers(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctrl.DB.Model(&model.ClientUserModel{}).
		Where("client_user_client_id = ?", clientID)

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			"(lower(client_user_email) LIKE ? OR lower(client_user_first_name) LIKE ? OR lower(client_user_last_name) LIKE ?)",
			like, like, like,
		)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("client_user_status = ?", st)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []model.ClientUserModel
	if err := tx.
		Order("client_user_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}

	items := make([]*dto.ClientUserResponse, 0, len(rows))
	for i := range rows {
		groupIDs, teamIDs, err := ctrl.membershipIDs(ctrl.DB, rows[i].ClientUserID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch memberships")
		}
		items = append(items, dto.NewClientUserResponse(&rows[i], groupIDs, teamIDs))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/users/:id
func (ctrl *ClientUserController) GetUserByID(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.ClientUserModel
	if err := ctrl.DB.First(&m, "client_user_id = ? AND client_user_client_id = ?", id, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	groupIDs, teamIDs, err := ctrl.membershipIDs(ctrl.DB, m.ClientUserID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch memberships")
	}
	return helper.JsonOK(c, "ok", dto.NewClientUserResponse(&m, groupIDs, teamIDs))
}

// PATCH /admin/users/:id — profile, role, status, and group/team sets.
func (ctrl *ClientUserController) UpdateUser(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateClientUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var existing model.ClientUserModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&existing, "client_user_id = ? AND client_user_client_id = ?", id, clientID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	req.ApplyToModel(&existing)
	if err := tx.Model(&model.ClientUserModel{}).
		Where("client_user_id = ?", existing.ClientUserID).
		Updates(&existing).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	groupIDs, teamIDs, err := ctrl.membershipIDs(tx, existing.ClientUserID)
	if err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch memberships")
	}

	// Replace membership sets when provided. Removing a group cascades to
	// its teams via FilterTeamSelection.
	if req.GroupIDs != nil || req.TeamIDs != nil {
		newGroups := groupIDs
		if req.GroupIDs != nil {
			newGroups = service.Dedupe(*req.GroupIDs)
			for _, g := range newGroups {
				if err := ctrl.assertGroupInClient(tx, clientID, g); err != nil {
					tx.Rollback()
					return err
				}
			}
		}
		newTeams := teamIDs
		if req.TeamIDs != nil {
			newTeams = service.Dedupe(*req.TeamIDs)
		}
		teamGroup, err := ctrl.teamGroupMap(tx, clientID)
		if err != nil {
			tx.Rollback()
			return err
		}
		newTeams = service.FilterTeamSelection(newGroups, newTeams, teamGroup)

		if err := tx.Delete(&model.UserGroupModel{}, "user_group_client_user_id = ?", existing.ClientUserID).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update group memberships")
		}
		for _, g := range newGroups {
			if err := tx.Create(&model.UserGroupModel{
				UserGroupClientUserID: existing.ClientUserID,
				UserGroupGroupID:      g,
			}).Error; err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update group memberships")
			}
		}
		if err := tx.Delete(&model.UserTeamModel{}, "user_team_client_user_id = ?", existing.ClientUserID).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update team memberships")
		}
		for _, t := range newTeams {
			if err := tx.Create(&model.UserTeamModel{
				UserTeamClientUserID: existing.ClientUserID,
				UserTeamTeamID:       t,
			}).Error; err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update team memberships")
			}
		}
		groupIDs, teamIDs = newGroups, newTeams
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "User updated", dto.NewClientUserResponse(&existing, groupIDs, teamIDs))
}

/* ================= internals ================= */

func (ctrl *ClientUserController) membershipIDs(db *gorm.DB, clientUserID uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	var groups []model.UserGroupModel
	if err := db.Where("user_group_client_user_id = ?", clientUserID).Find(&groups).Error; err != nil {
		return nil, nil, err
	}
	var teams []model.UserTeamModel
	if err := db.Where("user_team_client_user_id = ?", clientUserID).Find(&teams).Error; err != nil {
		return nil, nil, err
	}
	groupIDs := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.UserGroupGroupID)
	}
	teamIDs := make([]uuid.UUID, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.UserTeamTeamID)
	}
	return groupIDs, teamIDs, nil
}

func (ctrl *ClientUserController) assertGroupInClient(db *gorm.DB, clientID, groupID uuid.UUID) error {
	var cnt int64
	if err := db.Model(&clientsModel.GroupModel{}).
		Where("group_id = ? AND group_client_id = ? AND group_deleted_at IS NULL", groupID, clientID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify group")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusForbidden, "Group does not belong to this client")
	}
	return nil
}

// teamGroupMap returns team_id -> group_id for all live teams in the client.
func (ctrl *ClientUserController) teamGroupMap(db *gorm.DB, clientID uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	type row struct {
		TeamID  uuid.UUID `gorm:"column:team_id"`
		GroupID uuid.UUID `gorm:"column:group_id"`
	}
	var rows []row
	if err := db.Table("teams AS t").
		Joins("JOIN groups AS g ON g.group_id = t.team_group_id").
		Where("g.group_client_id = ? AND g.group_deleted_at IS NULL", clientID).
		Select("t.team_id, g.group_id").
		Scan(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load teams")
	}
	out := make(map[uuid.UUID]uuid.UUID, len(rows))
	for _, r := range rows {
		out[r.TeamID] = r.GroupID
	}
	return out, nil
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(full))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
