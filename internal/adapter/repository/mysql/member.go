package mysql

import (
	"context"

	memberDomain "library-admin-backend/internal/domain/member"
	"library-admin-backend/internal/query"

	"gorm.io/gorm"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

var memberListSpec = Spec{
	SearchFields: []string{"full_name", "email", "phone", "member_code"},
	FilterFields: map[string]string{
		"status":       "status",
		"member_since": "member_since",
	},
	SortFields: map[string]string{
		"id":           "id",
		"full_name":    "full_name",
		"member_since": "member_since",
	},
	DefaultSort: "full_name ASC",
}

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) Save(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MemberRepository) GetByID(ctx context.Context, id uint64) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *MemberRepository) List(ctx context.Context, req query.Request) (*query.Page[memberDomain.Member], error) {
	return FindPage[memberDomain.Member](ctx, r.db, memberListSpec, req)
}
