//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/tests/common/builder"
	usecasemock "salon-booking-api/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogUseCaseTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockArtistRepo  *usecasemock.MockArtistWriteRepository
	mockCatalogRepo *usecasemock.MockCatalogRepository
	uc              usecase.CatalogUseCase
}

func (s *CatalogUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockArtistRepo = usecasemock.NewMockArtistWriteRepository(s.mockCtrl)
	s.mockCatalogRepo = usecasemock.NewMockCatalogRepository(s.mockCtrl)

	s.uc = usecase.NewCatalogUseCase(s.mockArtistRepo, s.mockCatalogRepo)
}

func (s *CatalogUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CatalogUseCaseTestSuite))
}

// ================================================================================
// GetArtist
// ================================================================================

func (s *CatalogUseCaseTestSuite) TestGetArtist() {
	ctx := context.Background()
	artistRM := builder.NewBookingBuilder().BuildArtistRM()

	s.Run("成功: アーティストを取得できる", func() {
		s.mockArtistRepo.EXPECT().FindByID(ctx, artistRM.ID).Return(artistRM, nil).Times(1)

		got, err := s.uc.GetArtist(ctx, artistRM.ID)

		s.NoError(err)
		if diff := cmp.Diff(artistRM, got); diff != "" {
			s.Failf("artist mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("失敗: 存在しないアーティスト", func() {
		missingID := uuid.New()
		s.mockArtistRepo.EXPECT().FindByID(ctx, missingID).
			Return(nil, infra.WrapRepoErr("artist not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		got, err := s.uc.GetArtist(ctx, missingID)

		s.ErrorIs(err, usecase.ErrArtistNotFound)
		s.Nil(got)
	})

	s.Run("失敗: DB障害はそのまま伝播する", func() {
		s.mockArtistRepo.EXPECT().FindByID(ctx, artistRM.ID).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset"), infra.KindDBFailure)).Times(1)

		got, err := s.uc.GetArtist(ctx, artistRM.ID)

		s.Error(err)
		s.NotErrorIs(err, usecase.ErrArtistNotFound)
		s.Nil(got)
	})
}

// ================================================================================
// CreateArtist
// ================================================================================

func (s *CatalogUseCaseTestSuite) TestCreateArtist() {
	ctx := context.Background()
	artistRM := builder.NewBookingBuilder().BuildArtistRM()

	s.Run("失敗: メールアドレスが既に使われている", func() {
		s.mockArtistRepo.EXPECT().Create(ctx, artistRM.Name, artistRM.Email).
			Return(nil, infra.WrapRepoErr("duplicate email", errors.New("unique violation"), infra.KindDuplicateKey)).Times(1)

		got, err := s.uc.CreateArtist(ctx, reqdto.CreateArtistRequest{Name: artistRM.Name, Email: artistRM.Email})

		s.ErrorIs(err, usecase.ErrArtistEmailTaken)
		s.Nil(got)
	})
}
