package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bank-docs-api/internal/application/ports"
	"bank-docs-api/internal/domain/storedfile"
	domain "bank-docs-api/internal/domain/user"
	"bank-docs-api/internal/infrastructure/mq"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrReviewNotPending = errors.New("user is not pending review")
)

type UserService struct {
	userRepository domain.Repository
	fileService    ports.FileService
	mq             ports.RabbitMQ
	logger         *zap.Logger
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	fileService ports.FileService,
	mq ports.RabbitMQ,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		fileService:    fileService,
		mq:             mq,
		logger:         logger,
		mCounter:       mCounter,
	}
}

// Register creates the account in the pending state; the desired branch
// stays in pending_branch_id until a reviewer approves.
func (us *UserService) Register(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	h := string(hash)
	u.PasswordHash = &h
	u.Role = domain.RoleCustomer
	u.ApprovalStatus = domain.StatusPending

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.sendEvent(mq.ActionRegistered, uRet)
	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context, page int) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx, page)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// ApproveUser moves a pending user to approved and promotes
// pending_branch_id to branch_id. Approved and rejected are terminal.
func (us *UserService) ApproveUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.ApprovalStatus != domain.StatusPending {
		return nil, ErrReviewNotPending
	}

	u.ApprovalStatus = domain.StatusApproved
	u.RejectionReason = ""
	u.BranchID = u.PendingBranchID

	uRet, err := us.userRepository.UpdateApproval(ctx, *u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		// lost the race to another reviewer
		return nil, ErrReviewNotPending
	}

	us.sendEvent(mq.ActionApproved, uRet)
	us.mCounter.WithLabelValues("user_approved_total").Inc()

	return uRet, nil
}

func (us *UserService) RejectUser(ctx context.Context, id domain.ID, reason string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.ApprovalStatus != domain.StatusPending {
		return nil, ErrReviewNotPending
	}

	u.ApprovalStatus = domain.StatusRejected
	u.RejectionReason = reason
	u.BranchID = nil

	uRet, err := us.userRepository.UpdateApproval(ctx, *u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, ErrReviewNotPending
	}

	us.sendEvent(mq.ActionRejected, uRet)
	us.mCounter.WithLabelValues("user_rejected_total").Inc()

	return uRet, nil
}

// AttachIDPicture links a freshly stored identity picture to the user.
// At most one picture is active: the previously linked blob+metadata
// pair is deleted best-effort before the new path is written.
func (us *UserService) AttachIDPicture(ctx context.Context, id domain.ID, filename string) error {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	if u.IDPicturePath != "" && u.IDPicturePath != filename {
		if err = us.fileService.DeleteFile(ctx, u.IDPicturePath); err != nil {
			us.logger.Warn("replacing id picture: old file cleanup failed",
				zap.String("filename", u.IDPicturePath), zap.Error(err))
		}
	}

	return us.userRepository.UpdateIDPicturePath(ctx, id, filename)
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) error {
	us.fileService.DeleteUserFile(ctx, id, storedfile.TypeIDPicture)
	us.fileService.DeleteUserFile(ctx, id, storedfile.TypeDocument)
	us.fileService.DeleteUserFile(ctx, id, storedfile.TypeProfilePicture)

	u, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	us.sendEvent(mq.ActionDeleted, u)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) sendEvent(action string, u *domain.User) {
	us.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: action,
		UserID: strconv.FormatInt(int64(u.ID), 10),
		Payload: mq.UserPayload{
			ID:              int64(u.ID),
			Email:           u.Email,
			Role:            string(u.Role),
			ApprovalStatus:  string(u.ApprovalStatus),
			RejectionReason: u.RejectionReason,
			BranchID:        u.BranchID,
		},
	}
}
