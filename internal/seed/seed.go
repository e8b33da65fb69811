// Package seed loads the demo fixture into the in-memory store at startup.
// The store resets on every restart, so the fixture is the whole world the
// dev environment starts with.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
	"chattie/pkg/logger"
)

// Every demo account logs in with this password.
const demoPassword = "password123"

type Seeder struct {
	userRepo         repository.UserRepository
	chatRepo         repository.ChatRepository
	productRepo      repository.ProductRepository
	storyRepo        repository.StoryRepository
	presentationRepo repository.PresentationRepository
}

func NewSeeder(
	userRepo repository.UserRepository,
	chatRepo repository.ChatRepository,
	productRepo repository.ProductRepository,
	storyRepo repository.StoryRepository,
	presentationRepo repository.PresentationRepository,
) *Seeder {
	return &Seeder{
		userRepo:         userRepo,
		chatRepo:         chatRepo,
		productRepo:      productRepo,
		storyRepo:        storyRepo,
		presentationRepo: presentationRepo,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []*entity.User{
		{ID: "11111111-1111-1111-1111-111111111111", Name: "Tania Kusuma", Status: "Hello there!", Online: true, Role: "business"},
		{ID: "22222222-2222-2222-2222-222222222222", Name: "Melati Anggraeni", Status: "Available", Online: false, Role: "business"},
		{ID: "33333333-3333-3333-3333-333333333333", Name: "Citra Kirana", Status: "Feeling good", Online: true, Role: "business"},
		{ID: "44444444-4444-4444-4444-444444444444", Name: "Dion Mahendra", Status: "Busy", Online: false, Role: "business"},
		{ID: "55555555-5555-5555-5555-555555555555", Name: "Eliza Sari", Status: "Happy", Online: true, Role: "regular"},
		{ID: "66666666-6666-6666-6666-666666666666", Name: "Fitria Lestari", Status: "Available", Online: true, Role: "regular"},
		{ID: "77777777-7777-7777-7777-777777777777", Name: "Gilang Ramadhan", Status: "Helping others", Online: false, Role: "regular"},
		{ID: "88888888-8888-8888-8888-888888888888", Name: "Hana Yulita", Status: "Chilling", Online: true, Role: "regular"},
		{ID: "99999999-9999-9999-9999-999999999999", Name: "Indra Gunawan", Status: "At the office", Online: false, Role: "regular"},
		{ID: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", Name: "Joko Widodo", Status: "Ready to go", Online: true, Role: "regular"},
		{ID: "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb", Name: "Kevin Sanjaya", Status: "On vacation", Online: false, Role: "regular"},
	}

	allIDs := make([]string, 0, len(users))
	for _, user := range users {
		user.Email = demoEmail(user.Name)
		user.Avatar = "https://placehold.co/100x100.png"
		user.PasswordHash = string(hash)
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		allIDs = append(allIDs, user.ID)
	}

	tania := users[0]
	melati := users[1]
	citra := users[2]
	dion := users[3]

	if err := s.seedPrivateChats(ctx, tania, melati, citra); err != nil {
		return err
	}

	stores := []struct {
		id       string
		name     string
		ownerID  string
		products []*entity.Product
	}{
		{
			id: "store-1", name: "Toko Satu", ownerID: tania.ID,
			products: []*entity.Product{
				{ID: "prod-a", Name: "Produk A", Description: "Deskripsi Produk A dari Toko Satu", Price: 100000},
				{ID: "prod-b", Name: "Produk B", Description: "Deskripsi Produk B dari Toko Satu", Price: 150000},
			},
		},
		{
			id: "store-2", name: "Toko Dua", ownerID: melati.ID,
			products: []*entity.Product{
				{ID: "prod-c", Name: "Produk C", Description: "Deskripsi Produk C dari Toko Dua", Price: 200000},
			},
		},
		{
			id: "store-3", name: "Toko Tiga", ownerID: citra.ID,
			products: []*entity.Product{
				{ID: "prod-d", Name: "Produk D", Description: "Deskripsi Produk D dari Toko Tiga", Price: 250000},
			},
		},
		{
			id: "store-4", name: "Toko Empat", ownerID: dion.ID,
			products: []*entity.Product{
				{ID: "prod-e", Name: "Produk E", Description: "Deskripsi Produk E dari Toko Empat", Price: 300000},
			},
		},
	}

	for _, store := range stores {
		chat := &entity.Chat{
			ID:           store.id,
			Type:         "group",
			Name:         store.name,
			Avatar:       "https://placehold.co/100x100.png",
			Participants: allIDs,
		}
		if err := s.chatRepo.Create(ctx, chat); err != nil {
			return err
		}

		welcome := &entity.Message{
			ChatID:    chat.ID,
			SenderID:  store.ownerID,
			Body:      fmt.Sprintf("Selamat datang di %s!", store.name),
			Type:      "text",
			Delivered: true,
			Read:      true,
		}
		if err := s.chatRepo.CreateMessage(ctx, welcome); err != nil {
			return err
		}

		chat.LastMessage = welcome.Body
		chat.LastMessageAt = welcome.CreatedAt
		if err := s.chatRepo.Update(ctx, chat); err != nil {
			return err
		}

		for _, product := range store.products {
			product.ChatID = chat.ID
			product.SellerID = store.ownerID
			product.ImageURL = "https://placehold.co/300x300.png"
			if err := s.productRepo.Create(ctx, product); err != nil {
				return err
			}
		}
	}

	stories := []*entity.Story{
		{ID: "story-1", UserID: melati.ID, ImageURL: "https://placehold.co/400x700.png"},
		{ID: "story-2", UserID: citra.ID, ImageURL: "https://placehold.co/400x700.png"},
	}
	for _, story := range stories {
		if err := s.storyRepo.Create(ctx, story); err != nil {
			return err
		}
	}

	presentations := []*entity.Presentation{
		{ID: "pres-1", UserID: tania.ID, FileName: "Q3-roadmap.pptx", FileURL: "https://placehold.co/files/Q3-roadmap.pptx"},
		{ID: "pres-2", UserID: users[4].ID, FileName: "analisis-kompetitor.pptx", FileURL: "https://placehold.co/files/analisis-kompetitor.pptx"},
	}
	for _, presentation := range presentations {
		if err := s.presentationRepo.Create(ctx, presentation); err != nil {
			return err
		}
	}

	logger.Info("Seeded %d users, %d stores, %d stories, %d presentations",
		len(users), len(stores), len(stories), len(presentations))

	return nil
}

func (s *Seeder) seedPrivateChats(ctx context.Context, tania, melati, citra *entity.User) error {
	type privateChat struct {
		id       string
		a, b     *entity.User
		messages []*entity.Message
	}

	chats := []privateChat{
		{
			id: "chat-1", a: tania, b: melati,
			messages: []*entity.Message{
				{SenderID: melati.ID, Body: "Halo, apa kabar?", Type: "text", Read: true},
				{SenderID: tania.ID, Body: "Baik! Lagi sibuk sama aplikasi chat baru nih. Menurutmu gimana?", Type: "text", Read: true},
				{SenderID: melati.ID, Body: "Keren banget! Tampilannya bersih dan modern.", Type: "text"},
			},
		},
		{
			id: "chat-2", a: tania, b: citra,
			messages: []*entity.Message{
				{SenderID: citra.ID, Body: "Bisa kirim filenya?", Type: "text", Read: true},
				{SenderID: tania.ID, Body: "Tentu, ini filenya.", Type: "file", Meta: map[string]interface{}{"fileName": "rencana-proyek.pdf", "fileUrl": "#"}, Read: true},
			},
		},
	}

	for _, pc := range chats {
		chat := &entity.Chat{
			ID:           pc.id,
			Type:         "private",
			Participants: []string{pc.a.ID, pc.b.ID},
		}
		if err := s.chatRepo.Create(ctx, chat); err != nil {
			return err
		}

		var last *entity.Message
		for _, message := range pc.messages {
			message.ChatID = chat.ID
			message.Delivered = true
			message.CreatedAt = time.Now()
			if err := s.chatRepo.CreateMessage(ctx, message); err != nil {
				return err
			}
			last = message
		}

		if last != nil {
			chat.LastMessage = last.Body
			chat.LastMessageAt = last.CreatedAt
			if err := s.chatRepo.Update(ctx, chat); err != nil {
				return err
			}
		}
	}

	return nil
}

func demoEmail(name string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return local + "@chattie.id"
}
