package service

import (
	"context"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"
)

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.roomRepo.List(ctx)
}

func (s *roomService) CreateRoom(ctx context.Context, room *domain.Room) error {
	logger.EnterMethod("roomService.CreateRoom", "name", room.Name)
	if err := room.Validate(); err != nil {
		logger.ExitMethodWithError("roomService.CreateRoom", err, true)
		return err
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		logger.ExitMethodWithError("roomService.CreateRoom", err, domain.IsValidation(err))
		return err
	}
	logger.ExitMethod("roomService.CreateRoom", "roomID", room.ID)
	return nil
}

func (s *roomService) UpdateRoom(ctx context.Context, room *domain.Room) error {
	logger.EnterMethod("roomService.UpdateRoom", "roomID", room.ID)
	if room.ID == "" {
		err := domain.NewValidationError("id", "room id is required")
		logger.ExitMethodWithError("roomService.UpdateRoom", err, true)
		return err
	}
	if err := room.Validate(); err != nil {
		logger.ExitMethodWithError("roomService.UpdateRoom", err, true)
		return err
	}
	if err := s.roomRepo.Update(ctx, room); err != nil {
		logger.ExitMethodWithError("roomService.UpdateRoom", err, domain.IsValidation(err))
		return err
	}
	logger.ExitMethod("roomService.UpdateRoom", "roomID", room.ID)
	return nil
}

func (s *roomService) DeleteRoom(ctx context.Context, id string) error {
	logger.EnterMethod("roomService.DeleteRoom", "roomID", id)
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		logger.ExitMethodWithError("roomService.DeleteRoom", err, domain.IsValidation(err), "roomID", id)
		return err
	}
	logger.Info("Room deleted", "roomID", id)
	logger.ExitMethod("roomService.DeleteRoom", "roomID", id)
	return nil
}
