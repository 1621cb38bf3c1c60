package services

import (
	"context"
	"errors"
	"log"

	"pizzaria-crm/internal/adapters/persistence/repositories"
	"pizzaria-crm/internal/config"
	"pizzaria-crm/internal/core/domain"
	"pizzaria-crm/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Auth errors
var (
	ErrCredenciaisInvalidas = errors.New("nome ou senha incorretos")
	ErrCadastroDuplicado    = errors.New("já existe um cadastro com este cpf ou email")
	ErrCadastroFalhou       = errors.New("não foi possível concluir o cadastro")
	ErrTokenInvalido        = errors.New("token inválido")
	ErrTokenExpirado        = errors.New("token expirado")
)

// AuthService handles registration, login and token issuance.
type AuthService struct {
	usuarioRepo repositories.UsuarioRepository
	clienteRepo repositories.ClienteRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service.
func NewAuthService(
	usuarioRepo repositories.UsuarioRepository,
	clienteRepo repositories.ClienteRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		clienteRepo: clienteRepo,
		cfg:         cfg,
	}
}

// RegisterInput represents the self-service customer signup form.
type RegisterInput struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
	Senha    string `json:"senha"`
}

// LoginInput represents login input.
type LoginInput struct {
	Nome  string `json:"nome"`
	Senha string `json:"senha"`
}

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Perfil       string `json:"perfil"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates the credential record and the customer record under
// the same id. If the customer write fails the credential record is
// rolled back so logins never reference a missing customer.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	// 1. Reject duplicate cpf / email upfront
	if s.clienteRepo.BuscarPorCPF(ctx, input.CPF) != nil {
		return nil, ErrCadastroDuplicado
	}
	if s.clienteRepo.BuscarPorEmail(ctx, input.Email) != nil {
		return nil, ErrCadastroDuplicado
	}

	// 2. Build both records under one id, failing fast on bad fields
	id := uuid.NewString()

	usuario, err := domain.NovoUsuario(id, input.Nome, domain.PerfilCliente, input.CPF, input.Telefone, input.Senha)
	if err != nil {
		return nil, err
	}

	cliente, err := domain.NovoCliente(id, input.Nome, input.CPF, input.Email, input.Telefone, input.Endereco, nil, nil)
	if err != nil {
		return nil, err
	}

	// 3. Persist credentials first, then the customer
	if _, err := s.usuarioRepo.Criar(ctx, usuario); err != nil {
		return nil, ErrCadastroFalhou
	}

	if _, err := s.clienteRepo.Criar(ctx, cliente); err != nil {
		// Roll the credential record back so the signup can be retried.
		if !s.usuarioRepo.Deletar(ctx, usuario.ID) {
			log.Printf("[auth] rollback do usuário %s falhou após erro no cliente", usuario.ID)
		}
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrCadastroDuplicado
		}
		return nil, ErrCadastroFalhou
	}

	// 4. Issue tokens
	tokens, err := s.generateTokens(usuario)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Cliente cadastrado: %s (%s)", usuario.Nome, usuario.ID)

	return &AuthResponse{
		ID:           usuario.ID,
		Nome:         usuario.Nome,
		Perfil:       string(usuario.Perfil),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Login authenticates by name and plaintext secret.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	usuario, ok := s.usuarioRepo.Autenticar(ctx, input.Nome, input.Senha)
	if !ok {
		return nil, ErrCredenciaisInvalidas
	}

	tokens, err := s.generateTokens(usuario)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Login efetuado: %s", usuario.Nome)

	return &AuthResponse{
		ID:           usuario.ID,
		Nome:         usuario.Nome,
		Perfil:       string(usuario.Perfil),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpirado
		}
		return nil, ErrTokenInvalido
	}

	usuario := s.usuarioRepo.BuscarPorID(ctx, claims.UserID)
	if usuario == nil {
		return nil, ErrTokenInvalido
	}

	tokens, err := s.generateTokens(usuario)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:           usuario.ID,
		Nome:         usuario.Nome,
		Perfil:       string(usuario.Perfil),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// ValidateAccessToken validates an access token.
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

func (s *AuthService) generateTokens(u *domain.Usuario) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		u.ID,
		u.Nome,
		string(u.Perfil),
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.GenerateRefreshToken(
		u.ID,
		uuid.NewString(),
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
