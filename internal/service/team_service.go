package service

import (
	"context"
	"time"

	"supernote-be/internal/dto"
	"supernote-be/internal/entity"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/repository/specification"
	"supernote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITeamService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.TeamResponse, error)
	Get(ctx context.Context, userId, teamId uuid.UUID) (*dto.TeamResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	Delete(ctx context.Context, userId, teamId uuid.UUID) error
	AddMember(ctx context.Context, userId uuid.UUID, req *dto.AddTeamMemberRequest) (*dto.TeamMemberResponse, error)
	RemoveMember(ctx context.Context, userId, teamId, memberUserId uuid.UUID) error
	ListMembers(ctx context.Context, userId, teamId uuid.UUID) ([]*dto.TeamMemberResponse, error)
}

type teamService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTeamService(uowFactory unitofwork.RepositoryFactory) ITeamService {
	return &teamService{
		uowFactory: uowFactory,
	}
}

func toTeamResponse(t *entity.Team) *dto.TeamResponse {
	return &dto.TeamResponse{
		Id:        t.Id,
		Name:      t.Name,
		OwnerId:   t.OwnerId,
		CreatedAt: t.CreatedAt,
	}
}

func (s *teamService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	team := &entity.Team{
		Id:        uuid.New(),
		Name:      req.Name,
		OwnerId:   userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Team plus its owner membership row, atomically.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.TeamRepository().Create(ctx, team); err != nil {
		return nil, err
	}

	owner := &entity.TeamMember{
		Id:        uuid.New(),
		TeamId:    team.Id,
		UserId:    userId,
		Role:      entity.TeamRoleOwner,
		CreatedAt: time.Now(),
	}
	if err := uow.TeamRepository().AddMember(ctx, owner); err != nil {
		return nil, err
	}

	// Invite-by-email on creation. Addresses that match no account, or
	// resolve to the owner, are skipped silently.
	added := map[uuid.UUID]bool{userId: true}
	for _, email := range req.MemberEmails {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
		if err != nil {
			return nil, err
		}
		if user == nil || added[user.Id] {
			continue
		}
		member := &entity.TeamMember{
			Id:        uuid.New(),
			TeamId:    team.Id,
			UserId:    user.Id,
			Role:      entity.TeamRoleMember,
			CreatedAt: time.Now(),
		}
		if err := uow.TeamRepository().AddMember(ctx, member); err != nil {
			return nil, err
		}
		added[user.Id] = true
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toTeamResponse(team), nil
}

func (s *teamService) Get(ctx context.Context, userId, teamId uuid.UUID) (*dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: teamId})
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, serverutils.NotFound("Team not found")
	}

	member, err := uow.TeamRepository().FindMember(ctx, teamId, userId)
	if err != nil {
		return nil, err
	}
	if member == nil && team.OwnerId != userId {
		return nil, serverutils.Forbidden("Not a member of this team")
	}

	return toTeamResponse(team), nil
}

func (s *teamService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	team, err := s.findOwnedTeam(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	team.Name = req.Name
	team.UpdatedAt = time.Now()

	if err := uow.TeamRepository().Update(ctx, team); err != nil {
		return nil, err
	}

	return toTeamResponse(team), nil
}

func (s *teamService) List(ctx context.Context, userId uuid.UUID) ([]*dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	teams, err := uow.TeamRepository().FindAll(ctx,
		specification.MemberOf{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TeamResponse, len(teams))
	for i, t := range teams {
		responses[i] = toTeamResponse(t)
	}
	return responses, nil
}

func (s *teamService) findOwnedTeam(ctx context.Context, uow unitofwork.UnitOfWork, userId, teamId uuid.UUID) (*entity.Team, error) {
	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: teamId})
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, serverutils.NotFound("Team not found")
	}
	if team.OwnerId != userId {
		return nil, serverutils.Forbidden("Only the team owner can do this")
	}
	return team, nil
}

// Delete removes the team and everything hanging off it: memberships, the
// team's topics, and the notes attached to those topics. One transaction.
func (s *teamService) Delete(ctx context.Context, userId, teamId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findOwnedTeam(ctx, uow, userId, teamId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	topics, err := uow.TopicRepository().FindAll(ctx, specification.ByTeamId{TeamId: teamId})
	if err != nil {
		return err
	}
	for _, topic := range topics {
		if err := uow.NoteRepository().DeleteAllByTopicId(ctx, topic.Id); err != nil {
			return err
		}
	}

	if err := uow.TopicRepository().DeleteAllByTeamId(ctx, teamId); err != nil {
		return err
	}
	if err := uow.TeamRepository().RemoveAllMembers(ctx, teamId); err != nil {
		return err
	}
	if err := uow.TeamRepository().Delete(ctx, teamId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *teamService) AddMember(ctx context.Context, userId uuid.UUID, req *dto.AddTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findOwnedTeam(ctx, uow, userId, req.TeamId); err != nil {
		return nil, err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	existing, err := uow.TeamRepository().FindMember(ctx, req.TeamId, user.Id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewApiError(409, "User is already a member")
	}

	member := &entity.TeamMember{
		Id:        uuid.New(),
		TeamId:    req.TeamId,
		UserId:    user.Id,
		Role:      entity.TeamRoleMember,
		CreatedAt: time.Now(),
	}
	if err := uow.TeamRepository().AddMember(ctx, member); err != nil {
		return nil, err
	}

	return &dto.TeamMemberResponse{
		Id:       member.Id,
		UserId:   user.Id,
		Username: user.Username,
		Role:     string(member.Role),
	}, nil
}

// RemoveMember is allowed for the team owner, or for a member removing
// themselves (leaving). The owner can never be removed.
func (s *teamService) RemoveMember(ctx context.Context, userId, teamId, memberUserId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: teamId})
	if err != nil {
		return err
	}
	if team == nil {
		return serverutils.NotFound("Team not found")
	}
	if userId != team.OwnerId && userId != memberUserId {
		return serverutils.Forbidden("Only the team owner can remove other members")
	}
	if memberUserId == team.OwnerId {
		return serverutils.BadRequest("The owner cannot be removed from the team")
	}

	member, err := uow.TeamRepository().FindMember(ctx, teamId, memberUserId)
	if err != nil {
		return err
	}
	if member == nil {
		return serverutils.NotFound("Member not found")
	}

	return uow.TeamRepository().RemoveMember(ctx, teamId, memberUserId)
}

func (s *teamService) ListMembers(ctx context.Context, userId, teamId uuid.UUID) ([]*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: teamId})
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, serverutils.NotFound("Team not found")
	}

	requester, err := uow.TeamRepository().FindMember(ctx, teamId, userId)
	if err != nil {
		return nil, err
	}
	if requester == nil && team.OwnerId != userId {
		return nil, serverutils.Forbidden("Not a member of this team")
	}

	members, err := uow.TeamRepository().FindMembers(ctx, teamId)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: m.UserId})
		if err != nil {
			return nil, err
		}
		username := ""
		if user != nil {
			username = user.Username
		}
		responses = append(responses, &dto.TeamMemberResponse{
			Id:       m.Id,
			UserId:   m.UserId,
			Username: username,
			Role:     string(m.Role),
		})
	}
	return responses, nil
}
