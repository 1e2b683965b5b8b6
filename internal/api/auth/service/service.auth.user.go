// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "meta_content/internal/api/auth/dto"
	models "meta_content/internal/api/auth/models"
	basesvc "meta_content/internal/api/base/service"
	"meta_content/internal/common"
	"meta_content/internal/global"
	"meta_content/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to get users collection: %v", err)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// hashPassword băm mật khẩu bằng bcrypt với cost mặc định
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			"Không thể xử lý mật khẩu",
			common.StatusInternalServerError,
			err,
		)
	}
	return string(hashed), nil
}

// Register đăng ký người dùng mới.
// Email phải chưa tồn tại, mật khẩu được băm bcrypt trước khi lưu.
// User mới được gán role mặc định nếu hệ thống có role default.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (models.User, error) {
	var zero models.User

	if err := utility.ValidateEmail(input.Email); err != nil {
		return zero, err
	}
	if err := utility.ValidatePassword(input.Password); err != nil {
		return zero, err
	}

	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Email '%s' đã được đăng ký", input.Email),
			common.StatusBadRequest,
			nil,
		)
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return zero, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		IsActive: true,
	}

	// Gán role mặc định nếu có, không có role default thì user chưa có role
	roleService, err := NewRoleService()
	if err == nil {
		if defaultRole, err := roleService.GetDefaultRole(ctx); err == nil {
			user.RoleID = defaultRole.ID
		}
	}

	return s.InsertOne(ctx, user)
}

// Login xác thực email/mật khẩu và phát hành JWT.
// Token mới nhất được lưu trên user record, Protect middleware so khớp
// token này để token cũ hết hiệu lực sau khi login lại hoặc logout.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*authdto.UserLoginResult, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản đã bị khóa: "+user.BlockNote,
			common.StatusUnauthorized,
			nil,
		)
	}
	if !user.IsActive {
		return nil, common.ErrUserInactive
	}

	cfg := global.MongoDB_ServerConfig
	ttl := time.Duration(cfg.JwtExpireHours) * time.Hour
	token, err := utility.CreateToken(cfg.JwtSecret, user.ID.Hex(), ttl)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			"Không thể tạo token xác thực",
			common.StatusInternalServerError,
			err,
		)
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	})
	if err != nil {
		return nil, err
	}

	return &authdto.UserLoginResult{
		Token: token,
		User:  updated,
	}, nil
}

// Logout xóa token hiện tại của user, token đã phát hành không còn dùng được
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Unset: map[string]interface{}{"token": ""},
	})
	return err
}

// GetProfile trả về thông tin người dùng theo ID
func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (models.User, error) {
	return s.FindOneById(ctx, userID)
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.ErrInvalidCredentials
	}

	if err := utility.ValidatePassword(input.NewPassword); err != nil {
		return err
	}

	hashed, err := hashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	// Đổi mật khẩu đồng thời hủy token hiện tại, buộc login lại
	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set:   map[string]interface{}{"password": hashed},
		Unset: map[string]interface{}{"token": ""},
	})
	return err
}

// SetRole gán role cho người dùng.
// Role phải tồn tại, ngược lại trả lỗi 400 và user giữ nguyên role cũ.
func (s *UserService) SetRole(ctx context.Context, userID primitive.ObjectID, roleID primitive.ObjectID) (models.User, error) {
	var zero models.User

	roleService, err := NewRoleService()
	if err != nil {
		return zero, err
	}
	if _, err := roleService.FindOneById(ctx, roleID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.ErrInvalidReference
		}
		return zero, err
	}

	return s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"roleId": roleID},
	})
}

// BlockUser khóa người dùng theo email kèm ghi chú lý do.
// Token hiện tại bị hủy để chặn truy cập ngay lập tức.
func (s *UserService) BlockUser(ctx context.Context, email string, note string) (models.User, error) {
	var zero models.User

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   true,
			"blockNote": note,
		},
		Unset: map[string]interface{}{"token": ""},
	})
}

// UnBlockUser mở khóa người dùng theo email
func (s *UserService) UnBlockUser(ctx context.Context, email string) (models.User, error) {
	var zero models.User

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   false,
			"blockNote": "",
		},
	})
}
