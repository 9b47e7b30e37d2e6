package api

import "encoding/json"

type Project struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	RepoURL     string `json:"repoUrl,omitempty"`
	LiveURL     string `json:"liveUrl,omitempty"`
}

// Link is the best address to show for the project.
func (p Project) Link() string {
	switch {
	case p.LiveURL != "":
		return p.LiveURL
	case p.RepoURL != "":
		return p.RepoURL
	default:
		return p.URL
	}
}

// UnmarshalJSON accepts both "id" and the MongoDB-style "_id".
func (p *Project) UnmarshalJSON(b []byte) error {
	type plain Project
	var v struct {
		plain
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Project(v.plain)
	if p.ID == "" {
		p.ID = v.MongoID
	}
	return nil
}

func (p Project) GetID() string { return p.ID }

type Comment struct {
	ID        string `json:"id,omitempty"`
	Author    string `json:"author,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (c *Comment) UnmarshalJSON(b []byte) error {
	type plain Comment
	var v struct {
		plain
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = Comment(v.plain)
	if c.ID == "" {
		c.ID = v.MongoID
	}
	return nil
}

type Post struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary,omitempty"`
	Content       string    `json:"content"`
	PublishedDate string    `json:"publishedDate,omitempty"`
	Comments      []Comment `json:"comments,omitempty"`
}

// UnmarshalJSON accepts both "id" and the MongoDB-style "_id".
func (p *Post) UnmarshalJSON(b []byte) error {
	type plain Post
	var v struct {
		plain
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Post(v.plain)
	if p.ID == "" {
		p.ID = v.MongoID
	}
	return nil
}

func (p Post) GetID() string { return p.ID }

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type UserInfo struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

func (u *UserInfo) UnmarshalJSON(b []byte) error {
	type plain UserInfo
	var v struct {
		plain
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*u = UserInfo(v.plain)
	if u.ID == "" {
		u.ID = v.MongoID
	}
	return nil
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
