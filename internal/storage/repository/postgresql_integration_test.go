package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

func TestStorage_CountPostsByAuthor(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantCount int
		setup     func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name:      "счёт только постов автора",
			email:     "author@example.com",
			wantCount: 3,
			setup: func(t *testing.T, factory *TestDataFactory) {
				for i := range 3 {
					factory.CreatePost(t, "author@example.com", fmt.Sprintf("post %d", i), "text", nil)
				}
				factory.CreatePost(t, "other@example.com", "other post", "text", nil)
			},
		},
		{
			name:      "у нового автора нет постов",
			email:     "fresh@example.com",
			wantCount: 0,
			setup:     func(_ *testing.T, _ *TestDataFactory) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			got, err := storage.CountPostsByAuthor(context.Background(), tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, got)
		})
	}
}

func TestStorage_IncrementVote(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	id := factory.CreatePost(t, "author@example.com", "voted post", "text", nil)

	// Счётчики стартуют как NULL, первый голос должен дать 1.
	count, err := storage.IncrementVote(context.Background(), id, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = storage.IncrementVote(context.Background(), id, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = storage.IncrementVote(context.Background(), id, models.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	post, err := storage.ReadPost(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, 2, post.Upvote)
	assert.Equal(t, 1, post.Downvote)
	assert.Equal(t, 1, post.VoteDifference)

	// Голос за несуществующий пост не трогает ни одной строки.
	count, err = storage.IncrementVote(context.Background(), 9999, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestStorage_ReadPost_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	post, err := storage.ReadPost(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestStorage_ListPosts(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	first := factory.CreatePostWithVotes(t, "a@example.com", "low score", 1, 5)
	second := factory.CreatePostWithVotes(t, "a@example.com", "high score", 10, 2)
	third := factory.CreatePostWithVotes(t, "b@example.com", "middle score", 4, 1)

	t.Run("сортировка по популярности", func(t *testing.T) {
		posts, err := storage.ListPosts(context.Background(), models.PostFilter{SortByPopularity: true})
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, second, posts[0].ID)
		assert.Equal(t, third, posts[1].ID)
		assert.Equal(t, first, posts[2].ID)
	})

	t.Run("фильтр по автору", func(t *testing.T) {
		posts, err := storage.ListPosts(context.Background(), models.PostFilter{AuthorEmail: "b@example.com"})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, third, posts[0].ID)
	})

	t.Run("поиск без учета регистра", func(t *testing.T) {
		posts, err := storage.ListPosts(context.Background(), models.PostFilter{Search: "HIGH"})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, second, posts[0].ID)
	})

	t.Run("детерминированный порядок при равных голосах", func(t *testing.T) {
		fourth := factory.CreatePostWithVotes(t, "c@example.com", "tied score", 10, 2)

		posts, err := storage.ListPosts(context.Background(), models.PostFilter{SortByPopularity: true})
		require.NoError(t, err)
		require.Len(t, posts, 4)
		// При равной разнице голосов первым идёт пост с большим id.
		assert.Equal(t, fourth, posts[0].ID)
		assert.Equal(t, second, posts[1].ID)
	})
}

func TestStorage_ListPosts_TagFilter(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	goDB := factory.CreatePost(t, "a@example.com", "go and databases", "text", []string{"go", "db"})
	factory.CreatePost(t, "a@example.com", "go only", "text", []string{"go"})
	factory.CreatePost(t, "a@example.com", "no tags", "text", nil)

	posts, err := storage.ListPosts(context.Background(), models.PostFilter{Tags: []string{"go", "db"}})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, goDB, posts[0].ID)

	posts, err = storage.ListPosts(context.Background(), models.PostFilter{Tags: []string{"go"}})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestStorage_UpgradeMembership(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, "user@example.com", "user", models.RoleMember, models.MembershipFree, models.DefaultMaxPosts)

	user, err := storage.UpgradeMembership(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.MembershipSubscribed, user.Membership)
	assert.Equal(t, models.SubscribedMaxPosts, user.MaxPosts)
	require.NotNil(t, user.Badge)
	assert.Equal(t, "gold", *user.Badge)

	// Повторное повышение идемпотентно.
	again, err := storage.UpgradeMembership(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, models.MembershipSubscribed, again.Membership)

	missing, err := storage.UpgradeMembership(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStorage_DeletePost_CascadesComments(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	postID := factory.CreatePost(t, "a@example.com", "post", "text", nil)
	factory.CreateComment(t, postID, "b@example.com", "nice")

	count, err := storage.DeletePost(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	comments, err := storage.ListCommentsByPost(context.Background(), postID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestStorage_Payments(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreatePayment(t, "user@example.com", "pi_1", 9.99, "pending")
	factory.CreatePayment(t, "user@example.com", "pi_2", 9.99, models.PaymentStatusSuccess)

	payment, err := storage.FindPaymentByPaymentID(context.Background(), "pi_2")
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, "user@example.com", payment.Email)

	missing, err := storage.FindPaymentByPaymentID(context.Background(), "pi_404")
	require.NoError(t, err)
	assert.Nil(t, missing)

	latest, err := storage.FindLatestSuccessfulPayment(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "pi_2", latest.PaymentID)

	// Повторное сохранение того же payment_id отклоняется базой.
	_, err = storage.SavePayment(context.Background(), models.Payment{
		Email:     "user@example.com",
		PaymentID: "pi_2",
		Price:     9.99,
		Status:    models.PaymentStatusSuccess,
	})
	assert.Error(t, err)
}

func TestStorage_Comments(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	postID := factory.CreatePost(t, "a@example.com", "post", "text", nil)
	commentID := factory.CreateComment(t, postID, "b@example.com", "spam spam spam")

	comment, err := storage.GetComment(context.Background(), commentID)
	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, "b@example.com", comment.AuthorEmail)

	missing, err := storage.GetComment(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, missing)

	reportID, err := storage.CreateReportedComment(context.Background(), models.ReportedComment{
		CommentID:   comment.ID,
		AuthorEmail: comment.AuthorEmail,
		Text:        comment.Text,
		Feedback:    "спам",
	})
	require.NoError(t, err)
	assert.Positive(t, reportID)
}

func TestStorage_PromoteToAdmin(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "user@example.com", "user", models.RoleMember, models.MembershipFree, models.DefaultMaxPosts)

	count, err := storage.PromoteToAdmin(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	user, err := storage.GetUserByUID(context.Background(), uid)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)

	count, err = storage.PromoteToAdmin(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestStorage_ListSubscriberEmails(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, "free@example.com", "free", models.RoleMember, models.MembershipFree, models.DefaultMaxPosts)
	factory.CreateUser(t, "paid@example.com", "paid", models.RoleMember, models.MembershipSubscribed, models.SubscribedMaxPosts)

	emails, err := storage.ListSubscriberEmails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"paid@example.com"}, emails)
}
