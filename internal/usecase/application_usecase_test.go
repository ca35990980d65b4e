package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var candidateP = domain.Principal{ID: "candidate1", Role: domain.RoleCandidate}

func TestApplyToJob(t *testing.T) {
	t.Run("Should create a pending application and notify the job owner", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		notifier := NewRecordingNotifier()
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, notifier)

		mockJobRepo.On("GetByID", mock.Anything, "job1").Return(activeJob("employerA"), nil)
		mockAppRepo.On("CheckExists", mock.Anything, "job1", "candidate1").Return(false, nil)
		mockAppRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.ApplyToJob(context.Background(), "candidate1", "job1", "I would love to join", "https://cv.example/c1.pdf")
		require.NoError(t, err)

		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "candidate1", app.CandidateID)
		assert.Equal(t, "job1", app.JobID)
		assert.False(t, app.AppliedAt.IsZero())
		require.NotNil(t, app.CoverLetter)
		assert.Equal(t, "I would love to join", *app.CoverLetter)

		require.Len(t, notifier.UserEvents["employerA"], 1)
		assert.Equal(t, domain.EventApplicationNew, notifier.UserEvents["employerA"][0].Name)
	})

	t.Run("Should return not found for a missing job", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, NewRecordingNotifier())

		mockJobRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		_, err := uc.ApplyToJob(context.Background(), "candidate1", "missing", "", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, err.(*apperror.AppError).Code)
	})

	t.Run("Should reject an inactive job", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, NewRecordingNotifier())

		job := activeJob("employerA")
		job.JobStatus = domain.JobStatusInactive
		mockJobRepo.On("GetByID", mock.Anything, "job1").Return(job, nil)

		_, err := uc.ApplyToJob(context.Background(), "candidate1", "job1", "", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*apperror.AppError).Code)
		mockAppRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject a duplicate application via the pre-check", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, NewRecordingNotifier())

		mockJobRepo.On("GetByID", mock.Anything, "job1").Return(activeJob("employerA"), nil)
		mockAppRepo.On("CheckExists", mock.Anything, "job1", "candidate1").Return(true, nil)

		_, err := uc.ApplyToJob(context.Background(), "candidate1", "job1", "", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, err.(*apperror.AppError).Code)
		mockAppRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should surface the storage backstop as the same conflict", func(t *testing.T) {
		// Two concurrent submissions can both pass CheckExists; the unique
		// index rejects the loser and the caller sees the identical 409.
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, NewRecordingNotifier())

		mockJobRepo.On("GetByID", mock.Anything, "job1").Return(activeJob("employerA"), nil)
		mockAppRepo.On("CheckExists", mock.Anything, "job1", "candidate1").Return(false, nil)
		mockAppRepo.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("You have already applied to this job"))

		_, err := uc.ApplyToJob(context.Background(), "candidate1", "job1", "", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, err.(*apperror.AppError).Code)
	})
}

func TestListByJobID(t *testing.T) {
	t.Run("Should return not found before ownership for a missing job", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, NewRecordingNotifier())

		mockJobRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		_, err := uc.ListByJobID(context.Background(), employerB, "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, err.(*apperror.AppError).Code)
	})

	t.Run("Should forbid a non-owning employer", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, NewRecordingNotifier())

		mockJobRepo.On("GetByID", mock.Anything, "job1").Return(activeJob("employerA"), nil)

		_, err := uc.ListByJobID(context.Background(), employerB, "job1")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*apperror.AppError).Code)
		mockAppRepo.AssertNotCalled(t, "GetByJobID")
	})

	t.Run("Should list for the owner", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, NewRecordingNotifier())

		mockJobRepo.On("GetByID", mock.Anything, "job1").Return(activeJob("employerA"), nil)
		mockAppRepo.On("GetByJobID", mock.Anything, "job1").Return([]domain.Application{
			{ID: "app1", JobID: "job1", CandidateID: "candidate1"},
		}, nil)

		apps, err := uc.ListByJobID(context.Background(), employerA, "job1")
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	pendingApp := func() *domain.Application {
		return &domain.Application{
			ID:          "app1",
			JobID:       "job1",
			CandidateID: "candidate1",
			Status:      domain.ApplicationStatusPending,
		}
	}

	t.Run("Should reject an invalid status value", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), NewRecordingNotifier())

		_, err := uc.UpdateApplicationStatus(context.Background(), employerA, "app1", "reviewed")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*apperror.AppError).Code)
	})

	t.Run("Should accept and notify the candidate", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		notifier := NewRecordingNotifier()
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, notifier)

		mockAppRepo.On("GetByID", mock.Anything, "app1").Return(pendingApp(), nil)
		mockJobRepo.On("GetByID", mock.Anything, "job1").Return(activeJob("employerA"), nil)
		mockAppRepo.On("UpdateStatus", mock.Anything, "app1", domain.ApplicationStatusAccepted).Return(nil)

		app, err := uc.UpdateApplicationStatus(context.Background(), employerA, "app1", domain.ApplicationStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusAccepted, app.Status)

		require.Len(t, notifier.UserEvents["candidate1"], 1)
		assert.Equal(t, domain.EventApplicationStatus, notifier.UserEvents["candidate1"][0].Name)
	})

	t.Run("Should forbid an employer who does not own the job", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo, NewRecordingNotifier())

		mockAppRepo.On("GetByID", mock.Anything, "app1").Return(pendingApp(), nil)
		mockJobRepo.On("GetByID", mock.Anything, "job1").Return(activeJob("employerA"), nil)

		_, err := uc.UpdateApplicationStatus(context.Background(), employerB, "app1", domain.ApplicationStatusRejected)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*apperror.AppError).Code)
		mockAppRepo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestWithdrawApplication(t *testing.T) {
	app := func() *domain.Application {
		return &domain.Application{ID: "app1", JobID: "job1", CandidateID: "candidate1"}
	}

	t.Run("Should allow the owning candidate", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo), NewRecordingNotifier())

		mockAppRepo.On("GetByID", mock.Anything, "app1").Return(app(), nil)
		mockAppRepo.On("Delete", mock.Anything, "app1").Return(nil)

		err := uc.WithdrawApplication(context.Background(), candidateP, "app1")
		assert.NoError(t, err)
	})

	t.Run("Should forbid a different candidate", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo), NewRecordingNotifier())

		mockAppRepo.On("GetByID", mock.Anything, "app1").Return(app(), nil)

		other := domain.Principal{ID: "candidate2", Role: domain.RoleCandidate}
		err := uc.WithdrawApplication(context.Background(), other, "app1")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*apperror.AppError).Code)
		mockAppRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Should allow an admin", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo), NewRecordingNotifier())

		mockAppRepo.On("GetByID", mock.Anything, "app1").Return(app(), nil)
		mockAppRepo.On("Delete", mock.Anything, "app1").Return(nil)

		err := uc.WithdrawApplication(context.Background(), adminP, "app1")
		assert.NoError(t, err)
	})
}
