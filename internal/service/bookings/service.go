package bookings

import (
	"context"
	"errors"
	"fmt"

	accountsRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/accounts"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями:
// списки, отмена pending-бронирований, административное удаление
type Service struct {
	ledger       Ledger
	accountStore AccountStore
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	ledger Ledger,
	accountStore AccountStore,
	logger Logger,
) *Service {
	return &Service{
		ledger:       ledger,
		accountStore: accountStore,
		logger:       logger,
	}
}

// GetUserBookings возвращает живые бронирования пользователя targetUsername,
// отсортированные по (start, id)
// Пользователь видит только собственные бронирования; администратор - любые
func (s *Service) GetUserBookings(ctx context.Context, requestingUsername, targetUsername string) (*models.BookingListResponse, error) {
	if requestingUsername != targetUsername {
		if err := s.checkAdminAccess(requestingUsername); err != nil {
			s.logger.Warn("GetUserBookings: access denied for user=%s to bookings of user=%s",
				requestingUsername, targetUsername)
			return nil, err
		}
	}

	bookings := s.ledger.UserBookings(targetUsername)

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), targetUsername)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings возвращает все живые бронирования системы
// Доступно только администраторам
func (s *Service) GetAllBookings(ctx context.Context, requestingUsername string) (*models.BookingListResponse, error) {
	if err := s.checkAdminAccess(requestingUsername); err != nil {
		s.logger.Warn("GetAllBookings: access denied for user=%s", requestingUsername)
		return nil, err
	}

	bookings := s.ledger.AllBookings()

	s.logger.Info("GetAllBookings: fetched %d bookings for admin=%s", len(bookings), requestingUsername)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет PENDING-бронирование пользователя
// Операция идемпотентна на уровне реестра: повторная отмена возвращает ErrBookingNotFound
// без побочных эффектов
func (s *Service) Cancel(ctx context.Context, username, bookingID string) error {
	if !s.ledger.CancelPending(username, bookingID) {
		s.logger.Warn("Cancel: no pending booking id=%s for user=%s", bookingID, username)
		return ErrBookingNotFound
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s for user=%s", bookingID, username)
	return nil
}

// AdminRemove удаляет любое бронирование независимо от статуса и владельца
// Доступно только администраторам; возврат средств не выполняется
func (s *Service) AdminRemove(ctx context.Context, requestingUsername, bookingID string) error {
	if err := s.checkAdminAccess(requestingUsername); err != nil {
		s.logger.Warn("AdminRemove: access denied for user=%s", requestingUsername)
		return err
	}

	if !s.ledger.AdminRemove(bookingID) {
		s.logger.Warn("AdminRemove: booking id=%s not found", bookingID)
		return ErrBookingNotFound
	}

	s.logger.Info("AdminRemove: successfully removed booking id=%s by admin=%s", bookingID, requestingUsername)
	return nil
}

// checkAdminAccess проверяет, что аккаунт существует и имеет роль admin
func (s *Service) checkAdminAccess(username string) error {
	acc, err := s.accountStore.Get(username)
	if err != nil {
		if errors.Is(err, accountsRepo.ErrAccountNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkAdminAccess - failed to get account: %v", ErrInternal, err)
	}

	if !acc.IsAdmin() {
		return ErrAccessDenied
	}

	return nil
}
