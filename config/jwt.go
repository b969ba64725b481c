package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpireHours 访问令牌有效期，默认 24 小时
	ExpireHours int `json:"expire_hours" yaml:"expire_hours"`
}

func (j *Jwt) Expire() int {
	if j.ExpireHours <= 0 {
		return 24
	}
	return j.ExpireHours
}
